// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gogama/firereq/request"
	"github.com/gogama/firereq/retry"
)

var emptyHandlers = HandlerGroup{}

// A Client submits request descriptors for execution. Its zero value
// is a valid configuration.
//
// The zero value client sends attempts through http.DefaultClient
// (from net/http), uses retry.DefaultPolicy as the retry policy, an
// empty version string, and an empty handler group (no event
// handlers).
//
// Client is stateless apart from its configuration and is safe for
// concurrent use by multiple goroutines: every submission owns its own
// state (active connection, cancellation flag, retry counter)
// exclusively, and the only values shared across submissions are the
// client's configuration fields, which are read once per submission
// and must not be mutated after the client is first used.
//
// A Client is higher-level than a Connection. The Connection is
// responsible for the mechanics of one send attempt, while Client
// drives the attempt/retry loop on top of it:
//
// • Client computes the final header set (caller headers plus the
// version header and any credential headers) and the final URL
// (percent-encoded parameters appended in insertion order) once per
// submission, before the first attempt;
//
// • Client retries transport-level failures using a customizable
// retry policy, never retrying a delivered response;
//
// • Client enforces the descriptor's overall timeout across all
// attempts and backoff waits;
//
// • Client decodes the terminal response via the descriptor's decode
// function, passing decode failures through verbatim; and
//
// • Client resolves each submission's Handle exactly once, whatever
// the interleaving of completion, timeout, and cancellation.
type Client struct {
	// Factory produces the fresh Connection used for each send
	// attempt.
	//
	// If Factory is nil, NewHTTPConnectionFactory(nil) is used, which
	// sends attempts through http.DefaultClient.
	Factory ConnectionFactory
	// RetryPolicy decides when to retry transport-level failures and
	// how long to sleep after a failed attempt before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// Version is the client library version threaded into the version
	// header on every request, as "<platform-tag>/<version>". It is
	// treated as an immutable snapshot at submission time.
	Version string
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a submission, for example to
	// emit metrics or logs.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Submit starts execution of a request descriptor and immediately
// returns the Handle which will eventually resolve with the decoded
// result or reject with a classified error. All work happens
// asynchronously: Submit never blocks on the network.
//
// The descriptor is read once, at submission time. It must not be
// mutated concurrently with, or after, the call to Submit.
//
// The credential values in cred are snapshotted at submission time; an
// empty credential omits its header entirely.
func (c *Client) Submit(d *request.Descriptor, cred Credentials) *Handle {
	if d == nil {
		panic("firereq: nil descriptor")
	}

	factory := c.Factory
	if factory == nil {
		factory = NewHTTPConnectionFactory(nil)
	}

	policy := c.RetryPolicy
	if policy == nil {
		policy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	// Header and URL construction happen once, before the first
	// attempt, so all retries of one submission use identical request
	// framing.
	header := finalHeaders(d, cred, c.Version)
	url := d.FinalURL()

	var ctx context.Context
	var cancel context.CancelFunc
	if d.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), d.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	e := &request.Execution{
		ID:         uuid.New(),
		Descriptor: d,
		URL:        url,
	}
	h := newHandle(e, cancel)

	// The watcher aborts the active connection when the overall
	// timeout fires, covering Connection implementations that honor
	// Abort but not the send context. It exits when run cancels the
	// context on its way out.
	go func() {
		<-ctx.Done()
		h.abortActive()
	}()
	go c.run(ctx, h, factory, policy, handlers, header, url)

	return h
}

func (c *Client) run(ctx context.Context, h *Handle, factory ConnectionFactory, policy retry.Policy, handlers *HandlerGroup, header http.Header, url string) {
	defer h.cancelCtx()

	e := h.exec
	d := e.Descriptor
	method := d.Method
	if method == "" {
		method = "GET"
	}

	handlers.run(BeforeSubmit, e)
	e.Start = time.Now()

	for {
		conn := factory()
		if !h.setActive(conn) {
			conn.Abort()
			c.reject(h, handlers, cancelError())
			return
		}
		handlers.run(BeforeAttempt, e)
		err := conn.Send(ctx, method, url, d.Body, header)
		h.clearActive()

		// Cancellation and timeout take precedence over whatever the
		// attempt reported: a completion detected after either has
		// fired is discarded.
		if ctx.Err() != nil {
			c.rejectCtx(h, handlers, ctx.Err())
			return
		}

		if err != nil {
			// The raw transport error goes into the execution, so retry
			// deciders and attempt handlers see exactly what the
			// connection reported. Classification happens only at the
			// terminal edge.
			e.Err = err
			handlers.run(AfterAttempt, e)
			if !policy.Decide(e) {
				var terminal error = transportError(err)
				if e.Attempt > 0 {
					terminal = budgetError(err)
				}
				c.reject(h, handlers, terminal)
				return
			}
			timer := time.NewTimer(policy.Wait(e))
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				c.rejectCtx(h, handlers, ctx.Err())
				return
			}
			e.Err = nil
			e.Status = 0
			e.Body = nil
			e.Attempt++
			handlers.run(AfterRetryWait, e)
			continue
		}

		e.Status = conn.Status()
		e.Body = conn.Body()
		handlers.run(AfterAttempt, e)

		if !d.IsSuccess(e.Status) {
			c.reject(h, handlers, statusError(e.Status, e.Body))
			return
		}
		if d.Decode == nil {
			c.fulfill(h, handlers, conn.Body())
			return
		}
		v, derr := d.Decode(conn)
		if derr != nil {
			// The decode function's failure is authoritative and
			// terminal: no wrapping, no retry.
			c.reject(h, handlers, derr)
			return
		}
		c.fulfill(h, handlers, v)
		return
	}
}

func (c *Client) rejectCtx(h *Handle, handlers *HandlerGroup, ctxErr error) {
	if h.wasCancelled() || errors.Is(ctxErr, context.Canceled) {
		c.reject(h, handlers, cancelError())
	} else {
		c.reject(h, handlers, timeoutError(ctxErr))
	}
}

// fulfill and reject run the AfterResolve handlers before delivering
// the outcome, so that by the time a subscriber observes the outcome,
// every event for the submission has fired.

func (c *Client) fulfill(h *Handle, handlers *HandlerGroup, v interface{}) {
	e := h.exec
	e.Err = nil
	e.Value = v
	e.End = time.Now()
	handlers.run(AfterResolve, e)
	h.resolve(v, nil)
}

func (c *Client) reject(h *Handle, handlers *HandlerGroup, err error) {
	e := h.exec
	e.Err = err
	e.End = time.Now()
	handlers.run(AfterResolve, e)
	h.resolve(nil, err)
}
