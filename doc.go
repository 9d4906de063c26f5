// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package synchttp provides a minimal synchronous HTTP client which owns
one reusable transfer context and turns every request into exactly one
of a *Response or an error.

Create a Client to begin making requests.

	client := &synchttp.Client{}
	defer client.Close()
	resp, err := client.Get("https://www.example.com/items", &synchttp.Options{
		Query: map[string]string{"id": "42"},
	})
	...
	resp, err := client.Post("https://www.example.com/items", &synchttp.Options{
		JSON: map[string]string{"name": "a"},
	})

Failed transfers are reported as *ClientError, which carries a
curl-compatible error code from package errcode along with whatever
output and metadata the transport captured:

	var cerr *synchttp.ClientError
	if errors.As(err, &cerr) && cerr.Code == errcode.CouldntResolveHost {
		...
	}

Options that cannot be turned into a transfer, such as a JSON value
encoding/json rejects, are reported as *OptionError before any
transfer is attempted.

To capture response headers, set WithHeader to any value. The header
lines then appear in Response.Headers and are removed from the body:

	resp, err := client.Get(url, &synchttp.Options{WithHeader: true})

For control over how transfers are performed, set an engine from
package transport:

	client := &synchttp.Client{
		Engine: &transport.NetHTTP{FollowRedirects: true},
	}

For control over transfer timeouts, set a timeout policy using package
timeout:

	client := &synchttp.Client{
		TimeoutPolicy: timeout.Fixed(10*time.Second),
	}

To hook into the client's request logic, install a handler into the
appropriate handler chain:

	handlers := &synchttp.HandlerGroup{}
	handlers.PushBack(synchttp.BeforeTransfer, synchttp.HandlerFunc(
		func(_ synchttp.Event, e *transfer.Execution) {
			e.Descriptor.HeaderLines = append(e.Descriptor.HeaderLines, "X-Request-Id: "+e.ID)
		}),
	)

Package synchttp provides basic interfaces for each method of the
client (Requester, Getter, Poster, and Closer); a combined interface
that composes all the basic methods (Executor); and utility functions
for working with a Requester (Inflate, Get, and Post).
*/
package synchttp
