// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
)

// A Connection performs exactly one send attempt. The engine creates a
// fresh Connection, via the submission's ConnectionFactory, for every
// attempt, including retries.
//
// Send performs the attempt and blocks until a response has been fully
// delivered and buffered, or the attempt has failed before any
// response was received. A nil return value means a response was
// delivered, whatever its status code; after a nil return the status,
// header, and body accessors report the delivered response. A non-nil
// return value means a transport-level failure: no response was
// obtained.
//
// Abort aborts the attempt, causing an in-flight Send to return early
// with an error. Abort must be safe to call before Send, after Send
// has returned, concurrently with Send, and more than once.
//
// A Connection satisfies request.Response once its Send has returned
// nil, so a descriptor's Decode function may interrogate it directly.
type Connection interface {
	Send(ctx context.Context, method, url string, body []byte, header http.Header) error
	Status() int
	Header(name string) string
	Body() []byte
	Abort()
}

// A ConnectionFactory produces a fresh Connection for each send
// attempt. Implementations must be safe for concurrent use by multiple
// goroutines, but each Connection they produce is used by only one
// goroutine for exactly one attempt.
type ConnectionFactory func() Connection

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the Go
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var errAborted = errors.New("firereq: connection aborted")

// NewHTTPConnectionFactory returns a ConnectionFactory whose
// Connections send requests through the given HTTPDoer and buffer the
// whole response body before reporting delivery. If doer is nil,
// http.DefaultClient from the standard net/http package is used.
//
// The produced Connections implement Abort by cancelling the context
// of the in-flight request, which interrupts both the request and the
// body read.
func NewHTTPConnectionFactory(doer HTTPDoer) ConnectionFactory {
	if doer == nil {
		doer = http.DefaultClient
	}
	return func() Connection {
		return &httpConn{doer: doer}
	}
}

type httpConn struct {
	doer HTTPDoer

	lock    sync.Mutex
	cancel  context.CancelFunc
	aborted bool

	status int
	header http.Header
	body   []byte
}

func (c *httpConn) Send(ctx context.Context, method, url string, body []byte, header http.Header) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !c.arm(cancel) {
		return errAborted
	}

	var rdr io.Reader
	if len(body) > 0 {
		rdr = bytes.NewReader(body)
	}
	r, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return err
	}
	// The final header set is shared across retries of one submission,
	// so give the doer its own copy to mutate.
	for k, vs := range header {
		r.Header[k] = vs
	}

	resp, err := c.doer.Do(r)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.status = resp.StatusCode
	c.header = resp.Header
	c.body = b
	return nil
}

func (c *httpConn) Status() int {
	return c.status
}

func (c *httpConn) Header(name string) string {
	return c.header.Get(name)
}

func (c *httpConn) Body() []byte {
	return c.body
}

// arm publishes the in-flight cancel function, unless the connection
// was already aborted, in which case it reports false and the send
// must not proceed.
func (c *httpConn) arm(cancel context.CancelFunc) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.aborted {
		return false
	}
	c.cancel = cancel
	return true
}

func (c *httpConn) Abort() {
	c.lock.Lock()
	c.aborted = true
	cancel := c.cancel
	c.lock.Unlock()
	if cancel != nil {
		cancel()
	}
}
