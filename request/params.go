// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "strings"

// Params is an ordered collection of URL parameters. Unlike url.Values
// from the standard net/url package, Params preserves insertion order,
// and its Encode method does not sort keys, so the query string the
// engine sends reflects the order in which the caller set the
// parameters.
//
// The zero value is an empty, ready-to-use collection.
type Params struct {
	pairs []param
}

type param struct {
	key   string
	value string
}

// Set sets the parameter named key to value. If the key is already
// present, its value is replaced in place, keeping the key's original
// position; otherwise the parameter is appended.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.pairs = append(p.pairs, param{key: key, value: value})
}

// Get returns the value of the parameter named key, and whether the
// parameter is present.
func (p *Params) Get(key string) (string, bool) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value, true
		}
	}
	return "", false
}

// Del removes the parameter named key, if present.
func (p *Params) Del(key string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs = append(p.pairs[:i], p.pairs[i+1:]...)
			return
		}
	}
}

// Len returns the number of parameters in the collection.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Each calls f once for each parameter, in insertion order.
func (p *Params) Each(f func(key, value string)) {
	for i := range p.pairs {
		f(p.pairs[i].key, p.pairs[i].value)
	}
}

// Encode encodes the parameters into "URL encoded" form
// ("bar=baz&foo=quux"), percent-encoding both keys and values, in
// insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(p.pairs[i].key))
		b.WriteByte('=')
		b.WriteString(Escape(p.pairs[i].value))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes s using the URI component encoding rule:
// unreserved characters per RFC 3986 section 2.3 (letters, digits, and
// "-", "_", ".", "~") pass through, and every other byte, including
// "?", "#", "&", "=", and space, is escaped as %XX.
//
// The standard library's url.QueryEscape is not used because it leaves
// some sub-delimiters unescaped and encodes space as "+", which not
// all servers decode in query components.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
