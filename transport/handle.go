// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"errors"

	"github.com/gogama/synchttp/errcode"
	"github.com/gogama/synchttp/transfer"
	pkgerrors "github.com/pkg/errors"
)

// A State is the lifecycle state of a Handle.
type State int

const (
	// Uninitialized is the state of a new Handle which has never held
	// a transfer context.
	Uninitialized State = iota
	// Ready means the Handle holds a transfer context and may execute
	// transfers.
	Ready
	// Closed means the Handle's transfer context has been released.
	// Initialize makes the Handle Ready again.
	Closed
)

var stateNames = []string{
	"Uninitialized",
	"Ready",
	"Closed",
}

// String returns the name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// A Context is one reusable transfer context, opened by an Engine. It
// performs transfers one at a time and holds whatever the engine keeps
// between transfers, typically a pool of live connections.
//
// Implementations need not be safe for concurrent use.
type Context interface {
	// Perform executes the transfer described by d and blocks until
	// it completes or fails. Transport failures are reported through
	// the result's ErrorCode, never by panicking.
	Perform(d *transfer.Descriptor) *transfer.Result
	// Close releases the resources held by the context. A context is
	// never used again after Close.
	Close()
}

// An Engine opens transfer contexts.
type Engine interface {
	Open() (Context, error)
}

// The EngineFunc type is an adapter to allow the use of ordinary
// functions as engines.
type EngineFunc func() (Context, error)

// Open calls f().
func (f EngineFunc) Open() (Context, error) {
	return f()
}

// DefaultEngine is the engine used by a Handle whose Engine is nil.
var DefaultEngine Engine = &NetHTTP{}

var errNotReady = errors.New("synchttp/transport: transfer context not initialized")

// A Handle owns one transfer context and drives it through the
// Uninitialized, Ready and Closed states. Its zero value is an
// Uninitialized handle which uses DefaultEngine.
//
// A Handle is not safe for concurrent use by multiple goroutines.
type Handle struct {
	// Engine opens the handle's transfer context. If Engine is nil,
	// DefaultEngine is used.
	Engine Engine

	ctx     Context
	state   State
	applied *transfer.Descriptor
}

// NewHandle returns an Uninitialized handle using the given engine.
func NewHandle(engine Engine) *Handle {
	return &Handle{Engine: engine}
}

// State returns the handle's current state.
func (h *Handle) State() State {
	return h.state
}

// Initialize releases the handle's transfer context, if it has one,
// and opens a new one. On success the handle is Ready.
//
// If the engine fails to open a context, the error is returned and the
// handle holds no context.
func (h *Handle) Initialize() error {
	h.Release()

	engine := h.Engine
	if engine == nil {
		engine = DefaultEngine
	}

	ctx, err := engine.Open()
	if err != nil {
		return pkgerrors.Wrap(err, "synchttp/transport: open transfer context")
	}
	if ctx == nil {
		return pkgerrors.New("synchttp/transport: engine opened nil context")
	}

	h.ctx = ctx
	h.state = Ready
	return nil
}

// Release closes the handle's transfer context and moves the handle
// to Closed. Release does nothing if the handle holds no context, so
// it is safe to call any number of times.
func (h *Handle) Release() {
	if h.ctx == nil {
		return
	}

	h.ctx.Close()
	h.ctx = nil
	h.applied = nil
	h.state = Closed
}

// Reset clears the descriptor applied by the previous Execute without
// releasing the transfer context, so live connections survive while no
// per-transfer configuration carries over into the next transfer.
// Reset does nothing if the handle holds no context.
func (h *Handle) Reset() {
	if h.ctx == nil {
		return
	}

	h.applied = nil
}

// Applied returns the descriptor applied by the most recent Execute,
// or nil if there was none since the last Reset, Release or Initialize.
func (h *Handle) Applied() *transfer.Descriptor {
	return h.applied
}

// Execute applies a copy of d to the transfer context and performs the
// transfer, blocking until it completes or fails.
//
// Execute never returns a nil result. If the handle is not Ready, the
// result carries errcode.FailedInit and no transfer is attempted.
func (h *Handle) Execute(d *transfer.Descriptor) *transfer.Result {
	if h.ctx == nil {
		return &transfer.Result{
			Info:         transfer.Info{URL: d.URL},
			ErrorCode:    errcode.FailedInit,
			ErrorMessage: errNotReady.Error(),
			Err:          errNotReady,
		}
	}

	h.applied = d.Clone()
	return h.ctx.Perform(h.applied)
}
