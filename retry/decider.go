// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/firereq/request"
	"github.com/gogama/firereq/transient"
)

// A Decider decides if a failed send attempt should be retried.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times and Before, and the built-in
// decider TransientErr; or implement your own Decider. Use DeciderFunc
// to convert an ordinary function into a Decider, and to compose
// deciders logically using DeciderFunc.And and DeciderFunc.Or.
//
// A Decider is only ever consulted after a transport-level failure, in
// other words when the attempt obtained no response at all. A
// delivered response is always terminal, whatever its status code, so
// no Decider can cause a delivered response to be retried.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// DefaultBudget is the total elapsed time DefaultPolicy will keep
// retrying transient failures before giving up.
const DefaultBudget = 2 * time.Minute

// DefaultDecider is a general-purpose retry decider suitable for
// common use cases. It retries transient transport-level failures
// (TransientErr) for up to DefaultBudget of elapsed time since the
// submission started (Before).
var DefaultDecider = TransientErr.And(Before(DefaultBudget))

// TransientErr is a decider that indicates a retry if the current
// error is transient according to transient.Categorize.
//
// TransientErr only looks at the error, so it always returns false
// when a response was delivered. Compose it with other deciders, for
// example an elapsed-time decider constructed with Before, to bound
// the retries.
var TransientErr DeciderFunc = transientErr

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current submission state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns
// true if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the attempt index e.Attempt is
// less than n, and false otherwise.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the submission started. The
// returned decider returns true while the submission duration is less
// than d, and false afterward. Use Before to bound the total retry
// budget of a submission.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

func transientErr(e *request.Execution) bool {
	return transient.Retryable(e.Err)
}
