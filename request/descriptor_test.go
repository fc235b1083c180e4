// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptor(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		d, err := NewDescriptor("POST", "http://x/", "hello")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, "POST", d.Method)
		assert.Equal(t, "http://x/", d.URL)
		assert.Equal(t, []byte("hello"), d.Body)
		assert.NotNil(t, d.Header)
		assert.Equal(t, 0, d.Params.Len())
		assert.Nil(t, d.SuccessCodes)
		assert.Nil(t, d.Decode)
	})
	t.Run("empty method means GET", func(t *testing.T) {
		d, err := NewDescriptor("", "http://x/", nil)
		require.NoError(t, err)
		assert.Equal(t, "GET", d.Method)
	})
	t.Run("invalid method", func(t *testing.T) {
		for _, method := range []string{"GET POST", "bad\tmethod", "smuggle\r\n", "(paren)"} {
			d, err := NewDescriptor(method, "http://x/", nil)
			assert.Nil(t, d, method)
			assert.Error(t, err, method)
		}
	})
	t.Run("empty URL", func(t *testing.T) {
		d, err := NewDescriptor("GET", "", nil)
		assert.Nil(t, d)
		assert.EqualError(t, err, "firereq/request: empty URL")
	})
	t.Run("body from reader", func(t *testing.T) {
		d, err := NewDescriptor("PUT", "http://x/", strings.NewReader("stream"))
		require.NoError(t, err)
		assert.Equal(t, []byte("stream"), d.Body)
	})
	t.Run("invalid body type", func(t *testing.T) {
		d, err := NewDescriptor("PUT", "http://x/", 42)
		assert.Nil(t, d)
		assert.EqualError(t, err, badBodyTypeMsg)
	})
}

func TestDescriptor_FinalURL(t *testing.T) {
	d, err := NewDescriptor("GET", "http://x/", nil)
	require.NoError(t, err)
	t.Run("no params", func(t *testing.T) {
		assert.Equal(t, "http://x/", d.FinalURL())
	})
	t.Run("params in insertion order", func(t *testing.T) {
		d.Params.Set("p1", "val1")
		d.Params.Set("p?2", "v#al?2")
		assert.Equal(t, "http://x/?p1=val1&p%3F2=v%23al%3F2", d.FinalURL())
	})
}

func TestDescriptor_IsSuccess(t *testing.T) {
	t.Run("default set", func(t *testing.T) {
		d := &Descriptor{}
		assert.True(t, d.IsSuccess(0))
		assert.True(t, d.IsSuccess(200))
		assert.True(t, d.IsSuccess(204))
		assert.True(t, d.IsSuccess(299))
		assert.False(t, d.IsSuccess(199))
		assert.False(t, d.IsSuccess(300))
		assert.False(t, d.IsSuccess(404))
		assert.False(t, d.IsSuccess(500))
	})
	t.Run("explicit set", func(t *testing.T) {
		d := &Descriptor{SuccessCodes: []int{200, 234}}
		assert.True(t, d.IsSuccess(200))
		assert.True(t, d.IsSuccess(234))
		assert.False(t, d.IsSuccess(0))
		assert.False(t, d.IsSuccess(201))
		assert.False(t, d.IsSuccess(404))
	})
	t.Run("explicit empty set", func(t *testing.T) {
		d := &Descriptor{SuccessCodes: []int{}}
		assert.False(t, d.IsSuccess(200))
		assert.False(t, d.IsSuccess(0))
	})
}
