// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"
)

const (
	nilCtxMsg = "synchttp/transfer: nil context"
)

var errEmptyURL = errors.New("synchttp/transfer: empty URL")

// A Descriptor contains the complete configuration of a single HTTP
// transfer for execution by a transfer engine.
//
// Descriptor deliberately exposes only the two methods the request
// façade distinguishes: a transfer is either a POST (Post is true) or
// a GET. Any other method requested of the façade is performed as a
// GET.
//
// Like the http.Request structure, a Descriptor has a context which
// controls the transfer and can be used to cancel it at any time.
type Descriptor struct {
	// URL is the target URL, including any query string.
	URL string

	// Post selects POST when true and GET otherwise.
	Post bool

	// HeaderLines are raw "Name: value" request header lines. Lines
	// sharing a name are sent in order; the engine decides the order of
	// distinct names. A line of the form "Name:" removes a header the engine
	// would otherwise send by default, and a line of the form "Name;"
	// sends the header with an empty value. Lines of any other shape
	// are ignored.
	HeaderLines []string

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent.
	Body []byte

	// IncludeHeader asks the engine to prefix the raw output with the
	// response header block, and to report the block's length in
	// Info.HeaderSize.
	IncludeHeader bool

	// ReturnTransfer asks the engine to buffer the whole response in
	// Result.RawOutput. When false, the engine discards the body after
	// reading it.
	ReturnTransfer bool

	// Timeout bounds the whole transfer. Zero means no timeout beyond
	// any deadline on the descriptor's context.
	Timeout time.Duration

	// ctx allows the transfer to be cancelled. It should only be
	// modified by copying the whole Descriptor using WithContext.
	ctx context.Context
}

// Method returns "POST" if the descriptor is a POST, and "GET"
// otherwise.
func (d *Descriptor) Method() string {
	if d.Post {
		return http.MethodPost
	}

	return http.MethodGet
}

// Context returns the descriptor's context. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (d *Descriptor) Context() context.Context {
	if d.ctx != nil {
		return d.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of d with its context changed to
// ctx, which must be non-nil.
func (d *Descriptor) WithContext(ctx context.Context) *Descriptor {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	d2 := new(Descriptor)
	*d2 = *d
	d2.ctx = ctx
	return d2
}

// Clone returns a deep copy of d. Engines apply a clone so that a
// caller mutating its descriptor after Execute cannot affect a later
// transfer.
func (d *Descriptor) Clone() *Descriptor {
	d2 := new(Descriptor)
	*d2 = *d
	if d.HeaderLines != nil {
		d2.HeaderLines = append([]string(nil), d.HeaderLines...)
	}
	if d.Body != nil {
		d2.Body = append([]byte(nil), d.Body...)
	}
	return d2
}

// ToRequest creates an HTTP request corresponding to the descriptor.
// The context of the new request is set to ctx, which may not be nil.
//
// A URL without a scheme, such as "example.com/path", is treated as
// an http URL. The returned error is non-nil only if the descriptor URL
// is empty or cannot be parsed; it is then a *url.Error with Op "parse".
func (d *Descriptor) ToRequest(ctx context.Context) (*http.Request, error) {
	u, err := parseURL(d.URL)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	var body io.Reader
	if len(d.Body) > 0 {
		body = bytes.NewReader(d.Body)
	}
	r, err := http.NewRequestWithContext(ctx, d.Method(), u.String(), body)
	if err != nil {
		return nil, err
	}
	h := ParseHeaderLines(d.HeaderLines)
	if host := h.Get("Host"); host != "" {
		r.Host = host
		h.Del("Host")
	}
	for name, values := range h {
		r.Header[name] = values
	}
	return r, nil
}

func parseURL(rawURL string) (*urlpkg.URL, error) {
	if rawURL == "" {
		return nil, &urlpkg.Error{Op: "parse", URL: rawURL, Err: errEmptyURL}
	}
	if !strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "/") {
		rawURL = "http://" + rawURL
	}
	return urlpkg.Parse(rawURL)
}

// ParseHeaderLines converts raw header lines into an http.Header.
//
// A line "Name: value" adds value under Name. A line "Name:" with
// nothing after the colon records Name with no values, which engines
// treat as "remove the default header". A line "Name;" records Name
// with a single empty value. Lines with neither separator, and lines
// with an empty or invalid name, are skipped.
func ParseHeaderLines(lines []string) http.Header {
	h := make(http.Header, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if i := strings.IndexByte(line, ':'); i > 0 {
			name := strings.TrimSpace(line[:i])
			if !validHeaderName(name) {
				continue
			}
			key := http.CanonicalHeaderKey(name)
			value := strings.TrimSpace(line[i+1:])
			if value == "" {
				if _, ok := h[key]; !ok {
					h[key] = []string{}
				}
				continue
			}
			h[key] = append(h[key], value)
		} else if strings.HasSuffix(line, ";") {
			name := strings.TrimSpace(strings.TrimSuffix(line, ";"))
			if !validHeaderName(name) {
				continue
			}
			key := http.CanonicalHeaderKey(name)
			h[key] = append(h[key], "")
		}
	}
	return h
}

// HasHeader reports whether any of the raw header lines names the
// header name, compared case-insensitively.
func HasHeader(lines []string, name string) bool {
	for _, line := range lines {
		i := strings.IndexAny(line, ":;")
		if i > 0 && strings.EqualFold(strings.TrimSpace(line[:i]), name) {
			return true
		}
	}
	return false
}

func validHeaderName(name string) bool {
	return name != "" && strings.IndexFunc(name, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !isTokenRune(r)
}

// isTokenRune is lifted verbatim from x/net/http/httpguts/httplex.go
// (but converted to non-exported). It classifies a rune as being valid
// for a token as defined in https://tools.ietf.org/html/rfc7230#section-3.2.6
func isTokenRune(r rune) bool {
	i := int(r)
	return i < len(isTokenTable) && isTokenTable[i]
}

var isTokenTable = [127]bool{
	'!':  true,
	'#':  true,
	'$':  true,
	'%':  true,
	'&':  true,
	'\'': true,
	'*':  true,
	'+':  true,
	'-':  true,
	'.':  true,
	'0':  true,
	'1':  true,
	'2':  true,
	'3':  true,
	'4':  true,
	'5':  true,
	'6':  true,
	'7':  true,
	'8':  true,
	'9':  true,
	'A':  true,
	'B':  true,
	'C':  true,
	'D':  true,
	'E':  true,
	'F':  true,
	'G':  true,
	'H':  true,
	'I':  true,
	'J':  true,
	'K':  true,
	'L':  true,
	'M':  true,
	'N':  true,
	'O':  true,
	'P':  true,
	'Q':  true,
	'R':  true,
	'S':  true,
	'T':  true,
	'U':  true,
	'W':  true,
	'V':  true,
	'X':  true,
	'Y':  true,
	'Z':  true,
	'^':  true,
	'_':  true,
	'`':  true,
	'a':  true,
	'b':  true,
	'c':  true,
	'd':  true,
	'e':  true,
	'f':  true,
	'g':  true,
	'h':  true,
	'i':  true,
	'j':  true,
	'k':  true,
	'l':  true,
	'm':  true,
	'n':  true,
	'o':  true,
	'p':  true,
	'q':  true,
	'r':  true,
	's':  true,
	't':  true,
	'u':  true,
	'v':  true,
	'w':  true,
	'x':  true,
	'y':  true,
	'z':  true,
	'|':  true,
	'~':  true,
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
