// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gogama/synchttp/errcode"
	"github.com/gogama/synchttp/transfer"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
type IdleCloser interface {
	CloseIdleConnections()
}

// DefaultMaxRedirects is the redirect limit used by engines which
// follow redirects but have no explicit limit.
const DefaultMaxRedirects = 10

func checkRedirect(follow bool, max int) func(*http.Request, []*http.Request) error {
	if max <= 0 {
		max = DefaultMaxRedirects
	}
	return func(_ *http.Request, via []*http.Request) error {
		if !follow {
			return http.ErrUseLastResponse
		}
		if len(via) > max {
			return errcode.ErrTooManyRedirects
		}
		return nil
	}
}

// writeHeaderBlock writes the status line and header lines of resp,
// followed by the blank line that ends the header block, and returns
// the number of bytes written.
func writeHeaderBlock(buf *bytes.Buffer, resp *http.Response) int {
	n := buf.Len()
	buf.WriteString(statusLine(resp))
	buf.WriteString("\r\n")
	if len(resp.TransferEncoding) > 0 {
		buf.WriteString("Transfer-Encoding: ")
		buf.WriteString(strings.Join(resp.TransferEncoding, ", "))
		buf.WriteString("\r\n")
	}
	_ = resp.Header.Write(buf)
	buf.WriteString("\r\n")
	return buf.Len() - n
}

func statusLine(resp *http.Response) string {
	proto := resp.Proto
	if resp.ProtoMajor >= 2 {
		proto = "HTTP/" + strconv.Itoa(resp.ProtoMajor)
	}
	if proto == "" {
		proto = "HTTP/1.1"
	}
	status := resp.Status
	if status == "" {
		status = strconv.Itoa(resp.StatusCode) + " " + http.StatusText(resp.StatusCode)
	}
	return proto + " " + strings.TrimSpace(status)
}

// fillResponseInfo records the metadata carried by resp itself.
func fillResponseInfo(info *transfer.Info, resp *http.Response) {
	info.HTTPCode = resp.StatusCode
	info.ContentType = resp.Header.Get("Content-Type")
	if resp.Request != nil && resp.Request.URL != nil {
		info.URL = resp.Request.URL.String()
	}
	info.RedirectCount = redirectCount(resp)
}

// redirectCount walks the chain of responses which caused resp's
// request to be made.
func redirectCount(resp *http.Response) int {
	n := 0
	for r := resp.Request; r != nil && r.Response != nil; r = r.Response.Request {
		n++
	}
	return n
}
