// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides a structured-logging event-handler plug-in
// for the firereq engine, built on log/slog. The engine core itself
// never logs; install this handler to observe submissions.
package logging
