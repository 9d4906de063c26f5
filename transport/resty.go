// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gogama/synchttp/transfer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Resty is an engine which performs transfers with a resty client
// (github.com/go-resty/resty/v2). Its zero value is a valid
// configuration.
//
// Each context opened by Resty has its own resty.Client. Resty's own
// retry support is disabled, and redirects are not followed unless
// FollowRedirects is set.
//
// Resty adds a User-Agent header to requests which have none, and
// detects a Content-Type for bodies sent without one. Removal lines
// such as "User-Agent:" and "Content-Type:" therefore have no effect
// with this engine. As with NetHTTP, compressed responses are neither
// requested nor decoded.
type Resty struct {
	// FollowRedirects enables following of redirect responses.
	FollowRedirects bool
	// MaxRedirects limits the number of redirects followed when
	// FollowRedirects is set. Zero means DefaultMaxRedirects.
	MaxRedirects int
	// InsecureSkipVerify disables verification of the server's TLS
	// certificate chain and host name.
	InsecureSkipVerify bool
	// Proxy is the URL of a proxy to send every request through.
	Proxy string
	// Logger receives resty's own diagnostic messages. If nil, they
	// are discarded.
	Logger *zap.Logger
	// Configure, if non-nil, is called with each new resty.Client after
	// the engine has applied its own settings.
	Configure func(*resty.Client)
}

// Open opens a new context backed by a new resty.Client.
func (r *Resty) Open() (Context, error) {
	c := resty.New()
	c.SetRetryCount(0)
	c.SetAllowGetMethodPayload(true)
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(checkRedirect(r.FollowRedirects, r.MaxRedirects)))
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c.SetLogger(logger.Sugar())
	if r.InsecureSkipVerify {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	t, err := c.Transport()
	if err != nil {
		return nil, errors.Wrap(err, "synchttp/transport: resty transport")
	}
	t.DisableCompression = true
	if r.Proxy != "" {
		if _, err := url.Parse(r.Proxy); err != nil {
			return nil, errors.Wrap(err, "synchttp/transport: invalid proxy URL")
		}
		c.SetProxy(r.Proxy)
	}
	if r.Configure != nil {
		r.Configure(c)
	}

	return &restyContext{client: c}, nil
}

type restyContext struct {
	client *resty.Client
}

func (c *restyContext) Perform(d *transfer.Descriptor) *transfer.Result {
	res := &transfer.Result{
		Info: transfer.Info{URL: d.URL},
	}

	ctx := d.Context()
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}
	hr, err := d.ToRequest(ctx)
	if err != nil {
		res.Fail(err)
		return res
	}
	res.Info.RequestSize = len(d.Body)

	start := time.Now()
	req := c.client.R().SetContext(ctx).EnableTrace().SetDoNotParseResponse(true)
	for name, values := range hr.Header {
		req.Header[name] = values
	}
	if hr.Host != hr.URL.Host {
		req.SetHeader("Host", hr.Host)
	}
	if len(d.Body) > 0 {
		req.SetBody(d.Body)
	}

	resp, err := req.Execute(d.Method(), hr.URL.String())
	if resp != nil && resp.Request != nil {
		fillTraceInfo(&res.Info, resp.Request.TraceInfo(), time.Since(start))
	}
	if resp != nil && resp.RawResponse != nil {
		fillResponseInfo(&res.Info, resp.RawResponse)
	}
	if err != nil {
		res.Fail(err)
		return res
	}
	defer func() {
		_ = resp.RawBody().Close()
	}()
	res.Info.SizeUpload = int64(len(d.Body))

	readBody(d, resp.RawResponse, res)
	return res
}

func (c *restyContext) Close() {
	c.client.GetClient().CloseIdleConnections()
}

// fillTraceInfo copies resty's trace timings into info. Resty measures
// some intervals from milestones that never happen on a reused or
// IP-literal connection, so any timing outside [0, total] is dropped.
func fillTraceInfo(info *transfer.Info, ti resty.TraceInfo, total time.Duration) {
	info.TotalTime = total
	info.NameLookupTime = within(ti.DNSLookup, total)
	info.ConnectTime = within(ti.DNSLookup+ti.TCPConnTime, total)
	info.PreTransferTime = within(ti.ConnTime, total)
	if ti.ServerTime > 0 {
		info.StartTransferTime = within(ti.ConnTime+ti.ServerTime, total)
	}
	if ti.RemoteAddr != nil {
		if host, port, err := net.SplitHostPort(ti.RemoteAddr.String()); err == nil {
			info.PrimaryIP = host
			info.PrimaryPort, _ = strconv.Atoi(port)
		}
	}
}

func within(d, total time.Duration) time.Duration {
	if d < 0 || d > total {
		return 0
	}
	return d
}
