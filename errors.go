// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"errors"
	"fmt"
)

// A Code classifies the terminal error of a submission.
//
// Every error the engine itself produces is an *Error carrying one of
// these codes. Errors returned by a descriptor's Decode function are
// the one exception: they pass through to the Handle verbatim, with no
// wrapping, so they carry whatever type and content the caller's
// decode function gave them.
type Code int

const (
	// CodeTransport indicates the attempt obtained no response at all
	// (network failure, DNS failure, abort mid-flight) and no retry
	// was performed.
	CodeTransport Code = iota + 1
	// CodeUnacceptableStatus indicates a response was delivered but
	// its status code is not in the descriptor's success set. The
	// Error carries the status and the response body.
	CodeUnacceptableStatus
	// CodeTimeout indicates the descriptor's overall timeout elapsed
	// before a terminal outcome; any in-flight attempt was aborted.
	CodeTimeout
	// CodeCancelled indicates the caller cancelled the Handle before
	// a terminal outcome.
	CodeCancelled
	// CodeRetryBudget indicates repeated transport-level failures
	// exhausted the retry policy. The Error wraps the last transport
	// failure.
	CodeRetryBudget
)

var codeNames = map[Code]string{
	CodeTransport:          "transport",
	CodeUnacceptableStatus: "unacceptable-status",
	CodeTimeout:            "timeout",
	CodeCancelled:          "cancelled",
	CodeRetryBudget:        "retry-budget-exhausted",
}

// String returns the name of the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// An Error is a classified terminal error produced by the engine.
//
// Use CodeOf, or errors.As with an **Error target, to classify an
// error received from a Handle.
type Error struct {
	// Code classifies the failure.
	Code Code
	// Status is the delivered status code when Code is
	// CodeUnacceptableStatus, and 0 otherwise.
	Status int
	// Body is the delivered response body when Code is
	// CodeUnacceptableStatus, and nil otherwise.
	Body []byte
	// cause is the underlying error, if any. Reachable via Unwrap.
	cause error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeTransport:
		return fmt.Sprintf("firereq: no response received: %s", e.cause)
	case CodeUnacceptableStatus:
		return fmt.Sprintf("firereq: server responded with unacceptable status %d", e.Status)
	case CodeTimeout:
		return "firereq: timeout elapsed before a terminal outcome"
	case CodeCancelled:
		return "firereq: request cancelled"
	case CodeRetryBudget:
		return fmt.Sprintf("firereq: retry budget exhausted: %s", e.cause)
	default:
		return fmt.Sprintf("firereq: error (%s)", e.Code)
	}
}

// Unwrap returns the underlying cause, allowing errors.Is and
// errors.As to reach it. The cause is nil for CodeUnacceptableStatus
// and CodeCancelled errors.
func (e *Error) Unwrap() error {
	return e.cause
}

// Timeout reports whether the error is a timeout. It exists so that
// the transient package, and any other code using the conventional
// Timeout() method probe, classifies CodeTimeout errors correctly.
func (e *Error) Timeout() bool {
	return e.Code == CodeTimeout
}

// CodeOf returns the classification code of err, or 0 if err is nil or
// was not produced by the engine (for example an error passed through
// from a descriptor's Decode function).
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func transportError(cause error) *Error {
	return &Error{Code: CodeTransport, cause: cause}
}

func statusError(status int, body []byte) *Error {
	return &Error{Code: CodeUnacceptableStatus, Status: status, Body: body}
}

func timeoutError(cause error) *Error {
	return &Error{Code: CodeTimeout, cause: cause}
}

func cancelError() *Error {
	return &Error{Code: CodeCancelled}
}

func budgetError(cause error) *Error {
	return &Error{Code: CodeRetryBudget, cause: cause}
}
