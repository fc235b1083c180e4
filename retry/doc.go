// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry defines the retry policy plug-in interface for the
// firereq engine, and provides policy building blocks (deciders and
// waiters) as well as a default policy suitable for common use cases.
//
// Retry policies apply only to transport-level failures, where no
// response was obtained. A delivered response is always terminal,
// whatever its status code.
package retry
