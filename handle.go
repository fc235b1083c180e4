// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"context"
	"sync"

	"github.com/gogama/firereq/request"
)

// An Outcome is the terminal result of a submission: the decoded value
// on fulfillment, or the classified (or passed-through decode) error
// on rejection. Exactly one of Value and Err is meaningful.
type Outcome struct {
	Value interface{}
	Err   error
}

// A Handle is the future value of one submission. It is created
// unresolved by Client.Submit and resolved exactly once by the engine,
// either with a decoded success value or with an error, regardless of
// the interleaving of attempt completion, timeout, and cancellation.
//
// A Handle is safe for concurrent use by multiple goroutines.
type Handle struct {
	lock      sync.Mutex
	exec      *request.Execution
	active    Connection
	cancelCtx context.CancelFunc
	cancelled bool
	resolved  bool
	value     interface{}
	err       error
	subs      []chan Outcome
	done      chan struct{}
}

func newHandle(exec *request.Execution, cancelCtx context.CancelFunc) *Handle {
	return &Handle{
		exec:      exec,
		cancelCtx: cancelCtx,
		done:      make(chan struct{}),
	}
}

// Subscribe returns a channel on which the submission's terminal
// Outcome is delivered. Every call returns an independent channel, and
// every subscriber receives the same terminal outcome, including
// subscribers who subscribe after the Handle has already resolved.
// The returned channel is buffered, so the engine never blocks on a
// subscriber that has stopped receiving.
func (h *Handle) Subscribe() <-chan Outcome {
	ch := make(chan Outcome, 1)
	h.lock.Lock()
	if h.resolved {
		ch <- Outcome{Value: h.value, Err: h.err}
	} else {
		h.subs = append(h.subs, ch)
	}
	h.lock.Unlock()
	return ch
}

// Done returns a channel that is closed when the Handle resolves.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the Handle resolves or ctx is done, whichever
// comes first, and returns the terminal outcome or ctx's error.
// Waiting does not cancel the submission: a caller that stops waiting
// should call Cancel if it also wants the request abandoned.
func (h *Handle) Wait(ctx context.Context) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.value, h.err
}

// Cancel cancels the submission. If the Handle has not yet resolved,
// the currently active Connection (if any) is aborted, no further
// retry is scheduled, and the Handle rejects with a CodeCancelled
// error. If the Handle has already resolved, Cancel is a no-op. Cancel
// is idempotent and safe to invoke concurrently with attempt
// completion, timeout, or other Cancel calls; whichever reaches the
// resolution step first wins.
func (h *Handle) Cancel() {
	h.lock.Lock()
	if h.resolved || h.cancelled {
		h.lock.Unlock()
		return
	}
	h.cancelled = true
	active := h.active
	h.lock.Unlock()
	if active != nil {
		active.Abort()
	}
	h.cancelCtx()
}

// Execution returns the submission's execution state. The state is
// owned by the engine goroutine until the Handle resolves, so callers
// should read it only after Done is closed, except for the immutable
// fields (ID, Descriptor, URL).
func (h *Handle) Execution() *request.Execution {
	return h.exec
}

// wasCancelled reports whether Cancel has been invoked.
func (h *Handle) wasCancelled() bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.cancelled
}

// setActive records the connection performing the current attempt so
// that Cancel and the deadline watcher can abort it. It reports false,
// without recording, if the handle was already cancelled; the engine
// then abandons the attempt before sending.
func (h *Handle) setActive(c Connection) bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.cancelled {
		return false
	}
	h.active = c
	return true
}

// clearActive detaches the current attempt's connection once its send
// has returned. Aborting an already-completed connection is a safe
// no-op, so a concurrent Cancel that read the connection just before
// this call does no harm.
func (h *Handle) clearActive() {
	h.lock.Lock()
	h.active = nil
	h.lock.Unlock()
}

// abortActive aborts the currently active connection, if any. The
// deadline watcher uses it when the overall timeout fires.
func (h *Handle) abortActive() {
	h.lock.Lock()
	active := h.active
	h.lock.Unlock()
	if active != nil {
		active.Abort()
	}
}

// resolve transitions the handle to its terminal state, exactly once.
// The first caller wins; later calls report false and change nothing.
func (h *Handle) resolve(value interface{}, err error) bool {
	h.lock.Lock()
	if h.resolved {
		h.lock.Unlock()
		return false
	}
	h.resolved = true
	h.value = value
	h.err = err
	subs := h.subs
	h.subs = nil
	h.lock.Unlock()
	close(h.done)
	for _, ch := range subs {
		ch <- Outcome{Value: value, Err: err}
	}
	return true
}
