// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"log/slog"

	"github.com/gogama/firereq"
	"github.com/gogama/firereq/request"
)

// NewHandler returns an event handler which logs the submission
// lifecycle through the given structured logger. Install it for every
// event in firereq.Events(). If logger is nil, slog.Default() is used.
//
// Attempt-level events log at debug level; transport failures log at
// warn level; resolution logs at info level on fulfillment and error
// level on rejection. Every line carries the submission's request_id,
// method, and url, so one logical request can be followed across its
// attempts.
func NewHandler(logger *slog.Logger) firereq.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return firereq.HandlerFunc(func(evt firereq.Event, e *request.Execution) {
		attrs := []interface{}{
			"request_id", e.ID.String(),
			"method", e.Descriptor.Method,
			"url", e.URL,
		}
		switch evt {
		case firereq.BeforeAttempt:
			logger.Debug("attempt starting", append(attrs, "attempt", e.Attempt)...)
		case firereq.AfterAttempt:
			if e.Err != nil {
				logger.Warn("attempt failed",
					append(attrs, "attempt", e.Attempt, "error", e.Err.Error())...)
			} else {
				logger.Debug("response delivered",
					append(attrs, "attempt", e.Attempt, "status", e.Status)...)
			}
		case firereq.AfterRetryWait:
			logger.Debug("retrying", append(attrs, "attempt", e.Attempt)...)
		case firereq.AfterResolve:
			attrs = append(attrs,
				"attempts", e.Attempt+1,
				"duration_ms", e.Duration().Milliseconds(),
			)
			if e.Err != nil {
				logger.Error("request rejected", append(attrs, "error", e.Err.Error())...)
			} else {
				logger.Info("request fulfilled", append(attrs, "status", e.Status)...)
			}
		}
	})
}
