// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics provides a Prometheus event-handler plug-in for the
// firereq engine, recording attempt, retry, in-flight, duration, and
// outcome metrics per submission.
package metrics
