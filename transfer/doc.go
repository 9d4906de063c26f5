// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transfer contains the core types Descriptor (describes one HTTP
transfer), Result (the raw outcome of a transfer) and Execution (the
state of one request as it passes through the client). These types sit
between the synchttp client and the transfer engines in package
transport.

A Descriptor is the fully-resolved description of a transfer: the
target URL with its query string already embedded, whether the
transfer is a POST, the raw request header lines, the pre-buffered
body, and the flags that control what the engine returns. For those
familiar with libcurl, a Descriptor is the set of options applied to
an easy handle before curl_easy_perform.

	d := &transfer.Descriptor{
		URL:            "https://example.com/items?id=42",
		HeaderLines:    []string{"Accept: application/json"},
		ReturnTransfer: true,
	}

A Result is what a transfer engine hands back: the raw output bytes
(which begin with the response header block when IncludeHeader was
set), the transfer metadata, and a nonzero error code if the transfer
failed. A Result is never "thrown"; callers inspect its ErrorCode.

An Execution records the Descriptor and Result of one request along
with its timing, and is the value passed to event handlers installed
in a synchttp.Client. You will typically not allocate Execution
instances yourself.
*/
package transfer
