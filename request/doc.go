// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request provides the Descriptor type describing one logical
// HTTP call for execution by the firereq engine, and the Execution type
// recording the state of a submitted descriptor.
//
// Construct a descriptor with NewDescriptor, set headers, URL
// parameters, success codes, timeout, and a decode function as needed,
// and submit it with the engine's Client.Submit. The descriptor may be
// mutated freely before submission and must not be mutated afterward.
package request
