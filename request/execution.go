// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogama/firereq/transient"
)

// An Execution represents the state of a single submitted Descriptor.
//
// When a descriptor is submitted, an Execution is created for it. The
// Execution is updated as the submission progresses (for example when
// a response is delivered, or when a retry is needed) and is readable
// from the submission's Handle once the submission has resolved.
//
// Retry policies and event handlers receive the Execution and may read
// it, but should treat the exported fields as immutable: the execution
// state is owned by the engine goroutine driving the submission.
type Execution struct {
	// ID uniquely identifies the submission. It is assigned when the
	// descriptor is submitted and is constant thereafter. Event
	// handlers may use it to correlate log lines and metrics for one
	// logical request across its attempts.
	ID uuid.UUID

	// Descriptor is the descriptor being executed. It is never nil.
	Descriptor *Descriptor

	// URL is the final wire URL, the base URL with percent-encoded
	// parameters appended. It is computed once, before the first
	// attempt, and is identical across all attempts.
	URL string

	// Start is the time the submission started. It is assigned a
	// non-zero value when the engine goroutine begins work and is
	// constant thereafter.
	Start time.Time

	// End is the time the submission resolved. It contains the zero
	// value until the submission reaches its terminal state.
	End time.Time

	// Attempt is the zero-based number of the current send attempt.
	// It is zero on the initial attempt, one on the first retry, and
	// so on.
	Attempt int

	// Status is the status code of the response delivered by the most
	// recent attempt, or 0 if the most recent attempt failed before a
	// response was obtained, or while an attempt is underway.
	Status int

	// Err is the error from the most recent attempt, or, once the
	// submission has resolved, its terminal error. It is nil while an
	// attempt is underway and after a delivered response.
	Err error

	// Body is the response body delivered by the most recent attempt.
	// It is nil if the most recent attempt failed before a response
	// was obtained.
	Body []byte

	// Value is the decoded result value. It is set only when the
	// submission resolves successfully.
	Value interface{}
}

// Duration returns the duration of the submission so far.
//
// If the submission has not started, the duration is zero. If it has
// resolved, the duration is End minus Start and is static. Otherwise it
// is the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the submission has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the submission has resolved.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}
