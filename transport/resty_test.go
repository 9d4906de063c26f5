// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gogama/synchttp/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResty_Configure(t *testing.T) {
	s := newTestServer(t)
	var configured *resty.Client
	r := &Resty{
		Configure: func(c *resty.Client) {
			configured = c
			c.SetHeader("X-Default", "from-configure")
		},
	}
	res := perform(t, r, &transfer.Descriptor{
		URL:            s.URL + "/echo",
		HeaderLines:    []string{"X-Line: from-descriptor"},
		ReturnTransfer: true,
	})
	require.NotNil(t, configured)
	require.True(t, res.OK(), "unexpected failure: %s", res.ErrorMessage)
	e := decodeEcho(t, res.RawOutput)
	assert.Equal(t, "from-configure", e.Header.Get("X-Default"))
	assert.Equal(t, "from-descriptor", e.Header.Get("X-Line"))
}

func TestResty_DefaultHeadersKept(t *testing.T) {
	s := newTestServer(t)
	res := perform(t, &Resty{}, &transfer.Descriptor{
		URL:            s.URL + "/echo",
		Post:           true,
		HeaderLines:    []string{"User-Agent:", "Content-Type:", "X-Order: 1", "X-Order: 2"},
		Body:           []byte("hello"),
		ReturnTransfer: true,
	})
	require.True(t, res.OK(), "unexpected failure: %s", res.ErrorMessage)
	e := decodeEcho(t, res.RawOutput)
	assert.Contains(t, e.Header.Get("User-Agent"), "go-resty")
	assert.NotEmpty(t, e.Header.Get("Content-Type"))
	assert.Equal(t, []string{"1", "2"}, e.Header["X-Order"])
}

func TestResty_InvalidProxy(t *testing.T) {
	h := NewHandle(&Resty{Proxy: "://bad"})
	err := h.Initialize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid proxy URL")
}

func TestWithin(t *testing.T) {
	assert.Equal(t, time.Second, within(time.Second, 2*time.Second))
	assert.Equal(t, time.Duration(0), within(-time.Second, 2*time.Second))
	assert.Equal(t, time.Duration(0), within(3*time.Second, 2*time.Second))
}
