// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"testing"

	"github.com/gogama/synchttp/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	textHeaderBlock = "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\n"
	textRaw         = textHeaderBlock + "hello"
)

func TestNewResponse(t *testing.T) {
	t.Run("without header", func(t *testing.T) {
		res := &transfer.Result{
			RawOutput: []byte(`{"id":42}`),
			Info:      transfer.Info{HTTPCode: 200},
		}
		r := newResponse(res, false)
		assert.Equal(t, 200, r.StatusCode)
		assert.Equal(t, `{"id":42}`, string(r.Body))
		assert.NotNil(t, r.Headers)
		assert.Empty(t, r.Headers)
	})
	t.Run("without header keeps header bytes", func(t *testing.T) {
		res := &transfer.Result{
			RawOutput: []byte(textRaw),
			Info:      transfer.Info{HTTPCode: 200, HeaderSize: len(textHeaderBlock)},
		}
		r := newResponse(res, false)
		assert.Equal(t, textRaw, string(r.Body))
		assert.Empty(t, r.Headers)
	})
	t.Run("with header", func(t *testing.T) {
		res := &transfer.Result{
			RawOutput: []byte(textRaw),
			Info:      transfer.Info{HTTPCode: 200, HeaderSize: len(textHeaderBlock)},
		}
		r := newResponse(res, true)
		assert.Equal(t, 200, r.StatusCode)
		assert.Equal(t, []string{"HTTP/1.1 200 OK", "Content-Type: text/plain"}, r.Headers)
		assert.Equal(t, "hello", string(r.Body))
	})
	t.Run("with header and empty body", func(t *testing.T) {
		res := &transfer.Result{
			RawOutput: []byte("HTTP/1.1 204 No Content\r\n\r\n"),
			Info:      transfer.Info{HTTPCode: 204, HeaderSize: 27},
		}
		r := newResponse(res, true)
		assert.Equal(t, []string{"HTTP/1.1 204 No Content"}, r.Headers)
		assert.NotNil(t, r.Body)
		assert.Empty(t, r.Body)
	})
	t.Run("header size out of range", func(t *testing.T) {
		res := &transfer.Result{
			RawOutput: []byte("abc"),
			Info:      transfer.Info{HTTPCode: 200, HeaderSize: 99},
		}
		r := newResponse(res, true)
		assert.Equal(t, []string{"abc"}, r.Headers)
		assert.Empty(t, r.Body)
	})
	t.Run("nil output", func(t *testing.T) {
		r := newResponse(&transfer.Result{Info: transfer.Info{HTTPCode: 200}}, false)
		assert.NotNil(t, r.Body)
		assert.Empty(t, r.Body)
	})
}

func TestResponse_String(t *testing.T) {
	assert.Equal(t, "hello", (&Response{Body: []byte("hello")}).String())
}

func TestResponse_Header(t *testing.T) {
	r := &Response{Headers: []string{
		"HTTP/1.1 200 OK",
		"Content-Type: text/plain",
		"X-Multi: first",
		"X-Multi: second",
		"X-Empty:",
	}}
	assert.Equal(t, "text/plain", r.Header("content-type"))
	assert.Equal(t, "first", r.Header("X-Multi"))
	assert.Equal(t, "", r.Header("X-Empty"))
	assert.Equal(t, "", r.Header("X-Missing"))
	assert.Equal(t, "", r.Header("HTTP/1.1 200 OK"))
}

func TestResponse_JSON(t *testing.T) {
	r := &Response{Body: []byte(`{"id":42,"tags":["a","b"]}`)}
	var v struct {
		ID   int      `json:"id"`
		Tags []string `json:"tags"`
	}
	require.NoError(t, r.JSON(&v))
	assert.Equal(t, 42, v.ID)
	assert.Equal(t, []string{"a", "b"}, v.Tags)
	assert.Error(t, (&Response{Body: []byte("not json")}).JSON(&v))
}

func TestResponse_Get(t *testing.T) {
	r := &Response{Body: []byte(`{"id":42,"items":[{"name":"a"},{"name":"b"}]}`)}
	assert.Equal(t, int64(42), r.Get("id").Int())
	assert.Equal(t, "b", r.Get("items.1.name").String())
	assert.Equal(t, int64(2), r.Get("items.#").Int())
	assert.False(t, r.Get("missing").Exists())
}
