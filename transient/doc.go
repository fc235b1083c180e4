// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport-level errors by their
// transience, in other words by whether a retry of the failed send
// attempt has a prospect of success. The retry package's TransientErr
// decider builds its retry decisions on this classification.
package transient
