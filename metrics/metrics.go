// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gogama/firereq"
	"github.com/gogama/firereq/request"
)

// A Collector records Prometheus metrics about submissions. Install
// its Handler in a Client's handler group:
//
//	col := metrics.NewCollector(nil)
//	handlers := &firereq.HandlerGroup{}
//	for _, evt := range firereq.Events() {
//		handlers.PushBack(evt, col.Handler())
//	}
//	client := &firereq.Client{Handlers: handlers}
type Collector struct {
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
	inflight prometheus.Gauge
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics. If
// registry is nil, the default Prometheus registry is used.
func NewCollector(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Collector{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firereq_attempts_total",
				Help: "Total number of send attempts, including retries",
			},
			[]string{"method"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firereq_retries_total",
				Help: "Total number of retries of transport-level failures",
			},
			[]string{"method"},
		),
		inflight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "firereq_inflight_requests",
				Help: "Number of submissions not yet resolved",
			},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "firereq_request_duration_seconds",
				Help:    "Submission duration from start to resolution in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "outcome"},
		),
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firereq_outcomes_total",
				Help: "Total number of resolved submissions by outcome",
			},
			[]string{"method", "outcome", "status"},
		),
	}
}

// Handler returns an event handler which records the collector's
// metrics. The same handler should be installed for every event in
// firereq.Events().
func (c *Collector) Handler() firereq.Handler {
	return firereq.HandlerFunc(func(evt firereq.Event, e *request.Execution) {
		method := e.Descriptor.Method
		if method == "" {
			method = "GET"
		}
		switch evt {
		case firereq.BeforeSubmit:
			c.inflight.Inc()
		case firereq.BeforeAttempt:
			c.attempts.WithLabelValues(method).Inc()
		case firereq.AfterRetryWait:
			c.retries.WithLabelValues(method).Inc()
		case firereq.AfterResolve:
			c.inflight.Dec()
			outcome := outcomeLabel(e.Err)
			c.duration.WithLabelValues(method, outcome).Observe(e.Duration().Seconds())
			c.outcomes.WithLabelValues(method, outcome, strconv.Itoa(e.Status)).Inc()
		}
	})
}

// outcomeLabel maps a terminal error to a bounded-cardinality label.
// Decode failures carry caller-defined types, so they share a single
// "decode" label.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if code := firereq.CodeOf(err); code != 0 {
		return code.String()
	}
	return "decode"
}
