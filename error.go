// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"strconv"

	"github.com/gogama/synchttp/errcode"
	"github.com/gogama/synchttp/transfer"
)

// A ClientError reports a failed transfer. The request reached the
// transport, but the transport did not complete it.
type ClientError struct {
	// Message is the transport's description of the failure.
	Message string

	// Code is the transport error code. It is never errcode.OK.
	Code errcode.Code

	// Name is the canonical name of Code, for example
	// "CURLE_COULDNT_RESOLVE_HOST".
	Name string

	// RawResponse holds whatever output was received before the
	// failure, including the header block if header capture was
	// requested. It is nil if nothing was received.
	RawResponse []byte

	// Info is the transfer metadata captured at the time of failure.
	Info transfer.Info

	// Err is the underlying Go error, if the transport produced one.
	Err error
}

func newClientError(res *transfer.Result) *ClientError {
	return &ClientError{
		Message:     res.ErrorMessage,
		Code:        res.ErrorCode,
		Name:        res.ErrorCode.Name(),
		RawResponse: res.RawOutput,
		Info:        res.Info,
		Err:         res.Err,
	}
}

func (e *ClientError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.Strerror()
	}

	return "synchttp: " + e.Name + " (" + strconv.Itoa(int(e.Code)) + "): " + msg
}

func (e *ClientError) Unwrap() error { return e.Err }

// Timeout reports whether the transfer failed because it timed out.
func (e *ClientError) Timeout() bool {
	return e.Code == errcode.OperationTimedout
}

// Metadata returns the transfer metadata as a map keyed by the
// conventional curl info names, such as "http_code" and "header_size".
func (e *ClientError) Metadata() map[string]interface{} {
	return e.Info.Map()
}
