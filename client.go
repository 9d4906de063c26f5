// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"context"
	"strings"
	"time"

	"github.com/gogama/synchttp/timeout"
	"github.com/gogama/synchttp/transfer"
	"github.com/gogama/synchttp/transport"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emptyHandlers = HandlerGroup{}

// A Client is a synchronous HTTP client which owns one reusable
// transfer context. Its zero value is a valid configuration: the
// transfer context is opened on the first request.
//
// The zero value client uses transport.DefaultEngine as the engine,
// timeout.DefaultPolicy (no timeout) as the timeout policy, an empty
// handler group, and a no-op logger.
//
// Every request blocks until the transfer completes or fails and
// produces exactly one of a *Response or an error. Before each request
// the transfer context is reset, so nothing configured for one request
// carries over into the next.
//
// A Client is not safe for concurrent use by multiple goroutines.
// Goroutines needing to make requests at the same time should each use
// their own Client.
//
// Call Close when the Client is no longer needed to release the
// transfer context. A closed Client may still be used; the next
// request opens a new transfer context.
type Client struct {
	// Engine opens the transfer context used to perform transfers. It
	// must not be changed after the first request.
	//
	// If Engine is nil, transport.DefaultEngine is used.
	Engine transport.Engine
	// TimeoutPolicy specifies how long each transfer may take.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a request.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives a debug entry for every completed transfer and a
	// warning for every failed one.
	//
	// If Logger is nil, nothing is logged.
	Logger *zap.Logger

	handle *transport.Handle
}

// A ClientOption configures a Client constructed by New.
type ClientOption func(*Client)

// WithEngine sets the client's transfer engine.
func WithEngine(engine transport.Engine) ClientOption {
	return func(c *Client) { c.Engine = engine }
}

// WithTimeoutPolicy sets the client's timeout policy.
func WithTimeoutPolicy(p timeout.Policy) ClientOption {
	return func(c *Client) { c.TimeoutPolicy = p }
}

// WithHandlers sets the client's event handler group.
func WithHandlers(g *HandlerGroup) ClientOption {
	return func(c *Client) { c.Handlers = g }
}

// WithLogger sets the client's logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.Logger = logger }
}

// New constructs a Client and opens its transfer context, so the
// returned Client is ready for use. The error is non-nil only if the
// engine cannot open a transfer context.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.ready(); err != nil {
		return nil, err
	}

	return c, nil
}

// Get issues a GET to the specified URL. It is equivalent to
// c.Request(url, "GET", opts).
func (c *Client) Get(url string, opts *Options) (*Response, error) {
	return Get(c, url, opts)
}

// Post issues a POST to the specified URL. It is equivalent to
// c.Request(url, "POST", opts).
func (c *Client) Post(url string, opts *Options) (*Response, error) {
	return Post(c, url, opts)
}

// Request issues a request to the specified URL. It is equivalent to
// c.RequestContext(context.Background(), url, method, opts).
func (c *Client) Request(url, method string, opts *Options) (*Response, error) {
	return c.RequestContext(context.Background(), url, method, opts)
}

// RequestContext issues a request to the specified URL, blocking until
// the transfer completes or fails.
//
// Only "POST", compared case-insensitively, is performed as a POST.
// Every other method, including "GET", is performed as a GET.
//
// The returned error is one of:
//
// • *OptionError, if opts cannot be turned into a transfer. No transfer
// is attempted.
//
// • an error from the engine, if the transfer context cannot be
// opened. No transfer is attempted.
//
// • *ClientError, if the transfer was attempted but the transport did
// not complete it. If ctx is cancelled the error code is
// errcode.AbortedByCallback.
//
// A non-2XX status code does not result in an error.
//
// If a handler panics, the transfer context is released before the
// panic propagates.
func (c *Client) RequestContext(ctx context.Context, url, method string, opts *Options) (*Response, error) {
	if ctx == nil {
		panic("synchttp: nil context")
	}

	body, err := opts.buildBody()
	if err != nil {
		return nil, err
	}

	if err = c.ready(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			c.handle.Release()
			panic(r)
		}
	}()

	e := &transfer.Execution{
		ID:     uuid.NewString(),
		Method: method,
		Start:  time.Now(),
	}

	withHeader := opts.HeaderCaptured()
	d := &transfer.Descriptor{
		URL:            opts.buildURL(url),
		Post:           strings.EqualFold(method, "POST"),
		HeaderLines:    opts.headerLines(),
		Body:           body,
		IncludeHeader:  withHeader,
		ReturnTransfer: true,
	}
	d = d.WithContext(ctx)
	d.Timeout = c.timeoutPolicy().Timeout(d)
	e.Descriptor = d

	handlers := c.handlers()
	handlers.run(BeforeTransfer, e)
	e.Result = c.handle.Execute(e.Descriptor)

	var resp *Response
	if !e.Result.OK() {
		handlers.run(AfterTransferError, e)
		err = newClientError(e.Result)
	} else {
		handlers.run(AfterTransfer, e)
		resp = newResponse(e.Result, withHeader)
	}

	e.End = time.Now()
	c.log(e)
	handlers.run(AfterRequestEnd, e)
	return resp, err
}

// Close releases the client's transfer context. It is safe to call
// Close more than once. Close always returns nil.
func (c *Client) Close() error {
	if c.handle != nil {
		c.handle.Release()
	}

	return nil
}

// ready brings the handle to the Ready state with no per-transfer
// configuration left over from an earlier request.
func (c *Client) ready() error {
	if c.handle == nil {
		c.handle = transport.NewHandle(c.Engine)
	}

	if c.handle.State() != transport.Ready {
		return c.handle.Initialize()
	}

	c.handle.Reset()
	return nil
}

func (c *Client) timeoutPolicy() timeout.Policy {
	if c.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return c.TimeoutPolicy
}

func (c *Client) handlers() *HandlerGroup {
	if c.Handlers == nil {
		return &emptyHandlers
	}

	return c.Handlers
}

func (c *Client) log(e *transfer.Execution) {
	if c.Logger == nil {
		return
	}

	res := e.Result
	fields := []zap.Field{
		zap.String("id", e.ID),
		zap.String("method", e.Descriptor.Method()),
		zap.String("url", e.Descriptor.URL),
		zap.Int("status", res.Info.HTTPCode),
		zap.Duration("duration", e.Duration()),
	}
	if res.OK() {
		c.Logger.Debug("transfer complete", fields...)
		return
	}

	c.Logger.Warn("transfer failed", append(fields,
		zap.Int("code", int(res.ErrorCode)),
		zap.String("name", res.ErrorCode.Name()),
		zap.String("message", res.ErrorMessage),
	)...)
}
