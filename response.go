// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"encoding/json"
	"strings"

	"github.com/gogama/synchttp/transfer"
	"github.com/tidwall/gjson"
)

// A Response is the result of a successful transfer. A transfer is
// successful if the transport completed it, whatever the HTTP status
// code.
type Response struct {
	// StatusCode is the HTTP status code of the final response.
	StatusCode int

	// Body is the response body. It is never nil, but may be empty.
	Body []byte

	// Headers holds the non-empty lines of the response header block,
	// starting with the status line. It is empty unless header capture
	// was requested with Options.WithHeader.
	Headers []string
}

func newResponse(res *transfer.Result, withHeader bool) *Response {
	raw := res.RawOutput
	if raw == nil {
		raw = []byte{}
	}

	r := &Response{
		StatusCode: res.Info.HTTPCode,
		Body:       raw,
		Headers:    []string{},
	}
	if !withHeader {
		return r
	}

	n := res.Info.HeaderSize
	if n > len(raw) {
		n = len(raw)
	} else if n < 0 {
		n = 0
	}
	for _, line := range strings.Split(string(raw[:n]), "\r\n") {
		if line != "" {
			r.Headers = append(r.Headers, line)
		}
	}
	r.Body = raw[n:]

	return r
}

// String returns the body as a string.
func (r *Response) String() string {
	return string(r.Body)
}

// Header returns the value of the first captured header line whose
// name matches name case-insensitively, or "" if there is none. The
// status line is never matched.
func (r *Response) Header(name string) string {
	for _, line := range r.Headers {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(line[:i]), name) {
			return strings.TrimSpace(line[i+1:])
		}
	}

	return ""
}

// JSON decodes the body into v using encoding/json.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Get searches the body for the gjson path and returns the result. It
// is a shortcut for reading one value out of a JSON body without
// declaring a type for it.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}
