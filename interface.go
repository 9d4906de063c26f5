// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

// Requester is the interface that wraps the basic Request method.
//
// Request issues a request with the given method to the specified URL
// and returns either the response or an error, never both. Client
// implements the Requester interface, and any other Requester
// implementation must behave substantially the same as Client.Request.
//
// Any Requester can be converted into an Executor via the Inflate
// function.
type Requester interface {
	Request(url, method string, opts *Options) (*Response, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get issues a GET to the specified URL. Client implements the Getter
// interface, and any other Getter implementation must behave
// substantially the same as Client.Get.
//
// Any Requester can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string, opts *Options) (*Response, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post issues a POST to the specified URL. Client implements the
// Poster interface, and any other Poster implementation must behave
// substantially the same as Client.Post.
//
// Any Requester can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url string, opts *Options) (*Response, error)
}

// Closer is the interface that wraps the basic Close method.
//
// Close releases any transfer context held by the implementation. The
// implementation must remain usable after Close.
type Closer interface {
	Close() error
}

// Executor is the interface that groups the basic Request, Get, Post,
// and Close methods.
//
// Any Requester can be converted into an Executor via the Inflate
// function.
type Executor interface {
	Requester
	Getter
	Poster
	Closer
}

// Get uses the specified Requester to issue a GET to the specified URL.
func Get(r Requester, url string, opts *Options) (*Response, error) {
	return r.Request(url, "GET", opts)
}

// Post uses the specified Requester to issue a POST to the specified
// URL.
func Post(r Requester, url string, opts *Options) (*Response, error) {
	return r.Request(url, "POST", opts)
}

// Inflate converts any non-nil Requester into an Executor. If r is
// not a Closer, the Executor's Close method does nothing.
func Inflate(r Requester) Executor {
	if r == nil {
		panic("synchttp: nil requester")
	}

	if e, ok := r.(Executor); ok {
		return e
	}

	return inflated{r}
}

type inflated struct {
	requester Requester
}

func (i inflated) Request(url, method string, opts *Options) (*Response, error) {
	return i.requester.Request(url, method, opts)
}

func (i inflated) Get(url string, opts *Options) (*Response, error) {
	return Get(i.requester, url, opts)
}

func (i inflated) Post(url string, opts *Options) (*Response, error) {
	return Post(i.requester, url, opts)
}

func (i inflated) Close() error {
	if c, ok := i.requester.(Closer); ok {
		return c.Close()
	}

	return nil
}
