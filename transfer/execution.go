// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"context"
	"time"

	"github.com/gogama/synchttp/errcode"
)

// An Execution represents the state of a single request made through
// the synchttp client.
//
// When a request is made, an Execution is created for it. The Execution
// is updated as the request progresses (when the descriptor is built,
// and when the transfer result becomes available) and is handed to
// each event handler installed in the client.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. They may modify the
// Descriptor during the BeforeTransfer event (for example, to add a
// signing header), but should treat all other fields as read-only.
type Execution struct {
	// ID uniquely identifies the request. It is assigned when the
	// execution starts and appears in the client's log output.
	ID string

	// Method is the method requested of the client, as given by the
	// caller. The transfer itself is a POST only if Descriptor.Post is
	// set.
	Method string

	// Descriptor specifies the transfer being executed. It is nil until
	// the descriptor has been built.
	Descriptor *Descriptor

	// Result is the raw outcome of the transfer. It is nil until the
	// transfer has completed.
	Result *Result

	// Start is the start time of the request. It is assigned a non-zero
	// value when the request starts, and this value remains constant
	// thereafter.
	Start time.Time

	// End is the end time of the request. It contains the zero value
	// until the request ends, when it is set to the current time.
	End time.Time

	data context.Context
}

// StatusCode returns the HTTP status code of the transfer result, or 0
// if there is no result yet or the transfer failed before a status was
// received.
func (e *Execution) StatusCode() int {
	if e.Result == nil {
		return 0
	}

	return e.Result.Info.HTTPCode
}

// ErrorCode returns the error code of the transfer result, or
// errcode.OK if there is no result yet.
func (e *Execution) ErrorCode() errcode.Code {
	if e.Result == nil {
		return errcode.OK
	}

	return e.Result.ErrorCode
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Timeout indicates whether the transfer result is a timeout failure.
func (e *Execution) Timeout() bool {
	return e.ErrorCode() == errcode.OperationTimedout
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
