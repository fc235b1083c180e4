// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http/httpguts"
)

// A Response is the read-only view of a delivered HTTP response which a
// DecodeFunc may interrogate: the final status code, the response
// headers, and the fully-buffered response body. The engine's Connection
// abstraction satisfies Response once its attempt has completed.
type Response interface {
	// Status returns the HTTP status code of the delivered response,
	// or 0 if no response was obtained.
	Status() int
	// Header returns the first value of the named response header, or
	// the empty string if the header is absent. Lookup is
	// case-insensitive per net/http convention.
	Header(name string) string
	// Body returns the fully-buffered response body. It may be empty
	// but is never read-blocked.
	Body() []byte
}

// A DecodeFunc converts a delivered, acceptable-status response into
// the descriptor's result value.
//
// A DecodeFunc is only invoked after the response status code has been
// checked against the descriptor's success set. If the DecodeFunc
// returns an error, the submission's Handle rejects with exactly that
// error: the engine never wraps, rewrites, or retries a decode failure,
// so domain-specific error types defined by callers survive the engine
// untouched.
type DecodeFunc func(r Response) (interface{}, error)

// A Descriptor describes one logical HTTP call for execution by the
// engine: URL, method, headers, URL parameters, body, acceptable status
// codes, overall timeout, and the response decoding function.
//
// A Descriptor may be freely mutated up to the moment it is submitted.
// The engine reads the descriptor exactly once, at submission time, so
// once submitted the descriptor must not be modified concurrently with
// the submission it describes.
type Descriptor struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An
	// empty string means GET.
	Method string

	// URL is the base URL to access, without a query string. URL
	// parameters from Params are appended by the engine, with both
	// keys and values percent-encoded, in insertion order.
	URL string

	// Header contains the caller-supplied request headers. The engine
	// layers its version header, and any credential headers it was
	// given at submission, on top of these.
	Header http.Header

	// Params contains the URL parameters to append to URL, in
	// insertion order.
	Params Params

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent, for example on a GET or DELETE request.
	Body []byte

	// SuccessCodes is the set of status codes which count as success
	// for this call. A nil slice selects the default set: the 2xx
	// codes plus 0, where 0 denotes a transport that completed without
	// a network error but produced no status.
	SuccessCodes []int

	// Timeout bounds the whole submission, including all retries and
	// backoff waits. Zero means no overall deadline.
	Timeout time.Duration

	// Decode converts the delivered response into the result value the
	// submission's Handle fulfills with. If Decode is nil, the Handle
	// fulfills with the raw response body as a []byte.
	Decode DecodeFunc
}

// NewDescriptor returns a new Descriptor given a method, base URL, and
// optional body.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewDescriptor(method, url string, body interface{}) (*Descriptor, error) {
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("firereq/request: invalid method %q", method)
	}
	if url == "" {
		return nil, errors.New("firereq/request: empty URL")
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Descriptor{
		Method: method,
		URL:    url,
		Header: make(http.Header),
		Body:   b,
	}, nil
}

// FinalURL returns the URL the engine sends on the wire: the base URL
// unchanged if the descriptor has no URL parameters, otherwise the base
// URL followed by "?" and the percent-encoded parameters in insertion
// order. The result is stable across retries of one submission.
func (d *Descriptor) FinalURL() string {
	if d.Params.Len() == 0 {
		return d.URL
	}
	return d.URL + "?" + d.Params.Encode()
}

// IsSuccess reports whether the given status code is in the
// descriptor's success set. With a nil SuccessCodes slice, the default
// set is used: any 2xx code, plus 0.
func (d *Descriptor) IsSuccess(status int) bool {
	if d.SuccessCodes == nil {
		return status == 0 || (200 <= status && status <= 299)
	}
	for _, s := range d.SuccessCodes {
		if s == status {
			return true
		}
	}
	return false
}

// validMethod reports whether method is a valid token per RFC 7230
// section 3.2.6. HTTP methods share the token grammar with header
// field names, so the httpguts validator applies directly.
func validMethod(method string) bool {
	return httpguts.ValidHeaderFieldName(method)
}
