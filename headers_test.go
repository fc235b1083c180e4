// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/firereq/request"
)

func TestFinalHeaders(t *testing.T) {
	t.Run("version header always present", func(t *testing.T) {
		d := newTestDescriptor(t)
		h := finalHeaders(d, Credentials{}, "1.2.3")
		assert.Equal(t, "go/1.2.3", h.Get(VersionHeader))
		assert.Len(t, h, 1)
	})
	t.Run("caller headers preserved", func(t *testing.T) {
		d := newTestDescriptor(t)
		d.Header.Set("Content-Type", "application/json")
		d.Header.Set("X-Custom", "value")
		d.Header.Add("X-Custom", "value2")
		h := finalHeaders(d, Credentials{}, "1.2.3")
		assert.Equal(t, "application/json", h.Get("Content-Type"))
		assert.Equal(t, []string{"value", "value2"}, h.Values("X-Custom"))
		assert.Equal(t, "go/1.2.3", h.Get(VersionHeader))
		assert.Len(t, h, 3)
	})
	t.Run("result is a copy", func(t *testing.T) {
		d := newTestDescriptor(t)
		d.Header.Set("X-Custom", "original")
		h := finalHeaders(d, Credentials{}, "1.2.3")
		h.Set("X-Custom", "modified")
		h.Add("X-Extra", "extra")
		assert.Equal(t, "original", d.Header.Get("X-Custom"))
		assert.Empty(t, d.Header.Get("X-Extra"))
	})
	t.Run("auth token", func(t *testing.T) {
		d := newTestDescriptor(t)
		h := finalHeaders(d, Credentials{AuthToken: "T"}, "1.2.3")
		assert.Equal(t, "Firebase T", h.Get(AuthHeader))
	})
	t.Run("absent auth token omits header entirely", func(t *testing.T) {
		d := newTestDescriptor(t)
		h := finalHeaders(d, Credentials{}, "1.2.3")
		_, present := h[AuthHeader]
		assert.False(t, present)
	})
	t.Run("app id", func(t *testing.T) {
		d := newTestDescriptor(t)
		h := finalHeaders(d, Credentials{AppID: "1:234:web:abc"}, "1.2.3")
		assert.Equal(t, "1:234:web:abc", h.Get(AppIDHeader))
		_, present := h[AuthHeader]
		assert.False(t, present)
		_, present = h[AppCheckHeader]
		assert.False(t, present)
	})
	t.Run("app check token", func(t *testing.T) {
		d := newTestDescriptor(t)
		h := finalHeaders(d, Credentials{AppCheckToken: "ac-token"}, "1.2.3")
		assert.Equal(t, "ac-token", h.Get(AppCheckHeader))
	})
	t.Run("all credentials", func(t *testing.T) {
		d := newTestDescriptor(t)
		d.Header.Set("X-Custom", "value")
		h := finalHeaders(d, Credentials{
			AuthToken:     "T",
			AppID:         "app",
			AppCheckToken: "ac",
		}, "9.9.9")
		assert.Equal(t, "value", h.Get("X-Custom"))
		assert.Equal(t, "go/9.9.9", h.Get(VersionHeader))
		assert.Equal(t, "Firebase T", h.Get(AuthHeader))
		assert.Equal(t, "app", h.Get(AppIDHeader))
		assert.Equal(t, "ac", h.Get(AppCheckHeader))
		assert.Len(t, h, 5)
	})
	t.Run("engine headers overwrite caller headers", func(t *testing.T) {
		d := newTestDescriptor(t)
		d.Header.Set(AuthHeader, "Basic caller-supplied")
		d.Header.Set(VersionHeader, "caller/0.0.0")
		h := finalHeaders(d, Credentials{AuthToken: "T"}, "1.2.3")
		assert.Equal(t, "Firebase T", h.Get(AuthHeader))
		assert.Equal(t, "go/1.2.3", h.Get(VersionHeader))
	})
	t.Run("caller auth header survives absent token", func(t *testing.T) {
		d := newTestDescriptor(t)
		d.Header.Set(AuthHeader, "Basic caller-supplied")
		h := finalHeaders(d, Credentials{}, "1.2.3")
		assert.Equal(t, "Basic caller-supplied", h.Get(AuthHeader))
	})
}

func newTestDescriptor(t *testing.T) *request.Descriptor {
	d, err := request.NewDescriptor("GET", "http://x/", nil)
	require.NoError(t, err)
	return d
}
