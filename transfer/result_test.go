// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/synchttp/errcode"
	"github.com/stretchr/testify/assert"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{}
	assert.True(t, r.OK())
	err := &url.Error{Op: "Get", URL: "http://foo", Err: syscall.ECONNREFUSED}
	r.Fail(err)
	assert.False(t, r.OK())
	assert.Equal(t, errcode.CouldntConnect, r.ErrorCode)
	assert.Equal(t, err.Error(), r.ErrorMessage)
	assert.Same(t, err, r.Err)
}

func TestInfo_Map(t *testing.T) {
	i := Info{
		URL:          "http://foo/bar",
		HTTPCode:     201,
		HeaderSize:   45,
		TotalTime:    1500 * time.Millisecond,
		PrimaryIP:    "127.0.0.1",
		PrimaryPort:  8080,
		SizeDownload: 9,
	}
	m := i.Map()
	assert.Equal(t, "http://foo/bar", m["url"])
	assert.Equal(t, 201, m["http_code"])
	assert.Equal(t, 45, m["header_size"])
	assert.Equal(t, 1.5, m["total_time"])
	assert.Equal(t, 0.0, m["connect_time"])
	assert.Equal(t, "127.0.0.1", m["primary_ip"])
	assert.Equal(t, 8080, m["primary_port"])
	assert.Equal(t, int64(9), m["size_download"])
	assert.Len(t, m, 15)
}
