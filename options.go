// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"

	"github.com/gogama/synchttp/transfer"
)

// ErrInvalidOption is matched, via errors.Is, by every *OptionError.
var ErrInvalidOption = errors.New("synchttp: invalid option")

// An OptionError reports a request option that could not be turned
// into a transfer. No network activity takes place when a request
// fails with an OptionError.
type OptionError struct {
	// Option is the name of the offending field of Options.
	Option string
	// Err is the underlying encoding or type error.
	Err error
}

func (e *OptionError) Error() string {
	return "synchttp: invalid " + e.Option + " option: " + e.Err.Error()
}

func (e *OptionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidOption.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// Options configures a single request. All fields are optional, and a
// nil *Options is equivalent to the zero value.
type Options struct {
	// Query holds parameters which are form-encoded, in key order, and
	// appended to the URL after a "?". An empty Query leaves the URL
	// unchanged. The "?" is appended even if the URL already contains
	// a query string.
	Query map[string]string

	// Headers holds raw "Name: value" header lines which are passed to
	// the transport verbatim. Lines sharing a name keep their relative
	// order; the order of distinct names on the wire is up to the
	// transport. A line "Name:" removes a header the transport sends by
	// default.
	Headers []string

	// JSON, if set, is encoded with encoding/json and sent as the
	// request body, in which case Body is ignored. A nil pointer, map,
	// slice or interface value counts as unset. Unless Headers
	// already contains a Content-Type line, "Content-Type:
	// application/json" is added.
	JSON interface{}

	// Body is sent as the request body when JSON is unset. It may be a
	// string, []byte, io.Reader, io.ReadCloser, or url.Values (sent
	// form-encoded). If JSON is unset and Body is nil, the body is empty.
	Body interface{}

	// WithHeader requests capture of the response headers. It is
	// checked for presence, not truth: any non-nil value, including
	// false, turns header capture on.
	WithHeader interface{}
}

// HeaderCaptured reports whether the options request header capture,
// that is, whether WithHeader is set to any value.
func (o *Options) HeaderCaptured() bool {
	return o != nil && o.WithHeader != nil
}

func (o *Options) buildURL(base string) string {
	if o == nil || len(o.Query) == 0 {
		return base
	}

	v := make(url.Values, len(o.Query))
	for key, value := range o.Query {
		v.Set(key, value)
	}

	return base + "?" + v.Encode()
}

func (o *Options) buildBody() ([]byte, error) {
	if o == nil {
		return []byte{}, nil
	}

	if o.jsonSet() {
		b, err := json.Marshal(o.JSON)
		if err != nil {
			return nil, &OptionError{Option: "JSON", Err: err}
		}
		return b, nil
	}

	b, err := transfer.BodyBytes(o.Body)
	if err != nil {
		return nil, &OptionError{Option: "Body", Err: err}
	}
	if b == nil {
		b = []byte{}
	}

	return b, nil
}

func (o *Options) headerLines() []string {
	if o == nil {
		return []string{}
	}

	lines := make([]string, len(o.Headers), len(o.Headers)+1)
	copy(lines, o.Headers)
	if o.jsonSet() && !transfer.HasHeader(lines, "Content-Type") {
		lines = append(lines, "Content-Type: application/json")
	}

	return lines
}

func (o *Options) jsonSet() bool {
	if o.JSON == nil {
		return false
	}

	v := reflect.ValueOf(o.JSON)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return !v.IsNil()
	default:
		return true
	}
}
