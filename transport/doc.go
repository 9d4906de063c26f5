// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport owns and drives the reusable transfer context that
performs HTTP transfers for the synchttp client.

A Handle owns exactly one transfer Context, opened from an Engine. The
handle moves through three states:

	Uninitialized --Initialize--> Ready --Release--> Closed
	                              Ready --Reset----> Ready
	                             Closed --Initialize--> Ready

Execute applies a transfer.Descriptor to the context and performs the
blocking transfer, returning the raw transfer.Result. Execute never
returns a Go error: transport failures are reported through the
result's error code.

Two engines are provided. NetHTTP, the default, performs transfers with
the standard net/http client, giving each context its own connection
pool. Resty performs transfers with github.com/go-resty/resty/v2.

	h := transport.NewHandle(&transport.NetHTTP{FollowRedirects: true})
	if err := h.Initialize(); err != nil {
		...
	}
	defer h.Release()
	res := h.Execute(&transfer.Descriptor{URL: "https://example.com", ReturnTransfer: true})

A Handle is not safe for concurrent use by multiple goroutines.
*/
package transport
