// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gogama/synchttp/transfer"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

// NetHTTP is an engine which performs transfers with the GoLang
// standard HTTP client from the net/http package. Its zero value is a
// valid configuration.
//
// Each context opened by NetHTTP has its own http.Transport, and hence
// its own pool of live connections, which is kept across transfers and
// closed when the context is closed.
//
// Unlike http.DefaultClient, and like a libcurl easy handle, NetHTTP
// does not follow redirects unless FollowRedirects is set, and neither
// asks for nor decodes compressed responses, so the raw output holds
// exactly the header block and body the server sent. It sets no
// timeouts of its own; bound transfers with Descriptor.Timeout.
type NetHTTP struct {
	// FollowRedirects enables following of redirect responses.
	FollowRedirects bool
	// MaxRedirects limits the number of redirects followed when
	// FollowRedirects is set. Zero means DefaultMaxRedirects.
	MaxRedirects int
	// InsecureSkipVerify disables verification of the server's TLS
	// certificate chain and host name.
	InsecureSkipVerify bool
	// Proxy is the URL of a proxy to send every request through. If
	// empty, no proxy is used, regardless of the environment.
	Proxy string
	// HTTP2 enables HTTP/2 over TLS through golang.org/x/net/http2.
	HTTP2 bool
	// HTTPDoer, if non-nil, is used for every context in place of an
	// http.Client built from the other fields, which are then ignored.
	// This lets a test use the client of an httptest.Server.
	HTTPDoer HTTPDoer
}

// Open opens a new context with its own connection pool.
func (n *NetHTTP) Open() (Context, error) {
	if n.HTTPDoer != nil {
		return &netContext{doer: n.HTTPDoer}, nil
	}

	t := &http.Transport{
		DialContext: (&net.Dialer{
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost: 1,
		IdleConnTimeout:     118 * time.Second,
		DisableCompression:  true,
	}
	if n.InsecureSkipVerify {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if n.Proxy != "" {
		proxyURL, err := url.Parse(n.Proxy)
		if err != nil {
			return nil, errors.Wrap(err, "synchttp/transport: invalid proxy URL")
		}
		t.Proxy = http.ProxyURL(proxyURL)
	}
	if n.HTTP2 {
		if err := http2.ConfigureTransport(t); err != nil {
			return nil, errors.Wrap(err, "synchttp/transport: configure HTTP/2")
		}
	}

	return &netContext{
		doer: &http.Client{
			Transport:     t,
			CheckRedirect: checkRedirect(n.FollowRedirects, n.MaxRedirects),
		},
	}, nil
}

type netContext struct {
	doer HTTPDoer
}

func (c *netContext) Perform(d *transfer.Descriptor) *transfer.Result {
	res := &transfer.Result{
		Info: transfer.Info{URL: d.URL},
	}

	ctx := d.Context()
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}
	tr := newTracer()
	req, err := d.ToRequest(tr.withContext(ctx))
	if err != nil {
		res.Fail(err)
		return res
	}
	res.Info.RequestSize = len(d.Body)

	resp, err := c.doer.Do(req)
	if err != nil {
		tr.fill(&res.Info, len(d.Body))
		res.Fail(err)
		return res
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	fillResponseInfo(&res.Info, resp)
	readBody(d, resp, res)
	tr.fill(&res.Info, len(d.Body))
	return res
}

// readBody buffers the response into the result's raw output, prefixed
// by the header block if the descriptor asks for it. A read error
// leaves the partial output in place and fails the result.
func readBody(d *transfer.Descriptor, resp *http.Response, res *transfer.Result) {
	var buf bytes.Buffer
	var w io.Writer = &buf
	if !d.ReturnTransfer {
		w = io.Discard
	} else if d.IncludeHeader {
		res.Info.HeaderSize = writeHeaderBlock(&buf, resp)
	}

	n, err := io.Copy(w, resp.Body)
	res.Info.SizeDownload = n
	res.RawOutput = buf.Bytes()
	if res.RawOutput == nil {
		res.RawOutput = []byte{}
	}
	if err != nil {
		res.Fail(err)
	}
}

func (c *netContext) Close() {
	if ic, ok := c.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
