// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"net/http"

	"github.com/gogama/firereq/request"
)

// Wire header names set by the engine on top of the descriptor's
// caller-supplied headers.
const (
	// VersionHeader carries the client library version as
	// "<platform-tag>/<version>". It is set on every request.
	VersionHeader = "X-Firebase-Storage-Version"
	// AuthHeader carries the auth token as "Firebase <token>". It is
	// set only when an auth token was supplied at submission.
	AuthHeader = "Authorization"
	// AppIDHeader carries the app identifier verbatim. It is set only
	// when an app identifier was supplied at submission.
	AppIDHeader = "X-Firebase-GMPID"
	// AppCheckHeader carries the app-check token verbatim. It is set
	// only when an app-check token was supplied at submission.
	AppCheckHeader = "X-Firebase-AppCheck"
)

// PlatformTag is the platform component of the version header value.
const PlatformTag = "go"

// Credentials carries the optional credential material for one
// submission: plain string values, snapshotted at submission time.
//
// An empty string means the credential is absent, and the
// corresponding header is omitted entirely rather than sent empty.
type Credentials struct {
	// AuthToken is the auth token, sent as "Firebase <token>" in the
	// Authorization header.
	AuthToken string
	// AppID is the app identifier, sent verbatim in the
	// X-Firebase-GMPID header.
	AppID string
	// AppCheckToken is the app-check token, sent verbatim in the
	// X-Firebase-AppCheck header.
	AppCheckToken string
}

// finalHeaders computes the header set sent on the wire for a
// submission. It starts from the descriptor's caller-supplied headers
// unchanged, then layers the version header and, for each credential
// present, its header. Later layers overwrite earlier ones under the
// same name. The result is computed once per submission, before the
// first attempt, so all retries use identical request framing.
func finalHeaders(d *request.Descriptor, cred Credentials, version string) http.Header {
	h := make(http.Header, len(d.Header)+4)
	for k, vs := range d.Header {
		vs2 := make([]string, len(vs))
		copy(vs2, vs)
		h[k] = vs2
	}
	h.Set(VersionHeader, PlatformTag+"/"+version)
	if cred.AuthToken != "" {
		h.Set(AuthHeader, "Firebase "+cred.AuthToken)
	}
	if cred.AppID != "" {
		h.Set(AppIDHeader, cred.AppID)
	}
	if cred.AppCheckToken != "" {
		h.Set(AppCheckHeader, cred.AppCheckToken)
	}
	return h
}
