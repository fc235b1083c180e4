// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to observe or extend
// the submission lifecycle, for example to emit metrics or logs.
type Event int

const (
	// BeforeSubmit identifies the event that occurs when the engine
	// goroutine picks up a submission, before the first attempt.
	//
	// When Client fires BeforeSubmit, the execution's ID, descriptor,
	// and final URL are set, but the start time is not yet assigned.
	BeforeSubmit Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual send attempt, including retries.
	BeforeAttempt
	// AfterAttempt identifies the event that occurs after a send
	// attempt is concluded, regardless of whether a response was
	// delivered.
	//
	// When Client fires AfterAttempt, either the execution's status
	// and body are set (a response was delivered) or its error is set
	// (a transport-level failure), never both. AfterAttempt fires
	// before the retry policy is consulted.
	AfterAttempt
	// AfterRetryWait identifies the event that occurs after a backoff
	// wait has elapsed and a retry is about to start. It does not fire
	// if the wait was interrupted by cancellation or timeout.
	AfterRetryWait
	// AfterResolve identifies the event that occurs once the
	// submission has reached its terminal state. The execution's end
	// time is set, and exactly one of its value or error reflects the
	// outcome.
	AfterResolve
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSubmit",
	"BeforeAttempt",
	"AfterAttempt",
	"AfterRetryWait",
	"AfterResolve",
}

// Events returns a slice containing all events which can occur during
// a submission, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeSubmit,
		BeforeAttempt,
		AfterAttempt,
		AfterRetryWait,
		AfterResolve,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
