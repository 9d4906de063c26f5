// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/synchttp/transfer"
)

// A Policy defines a timeout policy which may be plugged into the
// synchttp client (synchttp.Client) to direct how long a transfer may
// take before it is abandoned with errcode.OperationTimedout.
type Policy interface {
	// Timeout returns the timeout to set on the transfer described by
	// d. A return value of zero or less means no timeout.
	//
	// The descriptor is fully built when Timeout is called and must
	// not be modified.
	Timeout(d *transfer.Descriptor) time.Duration
}

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(0)

// DefaultPolicy is the default timeout policy. It sets no timeout.
var DefaultPolicy = Infinite

// Fixed constructs a timeout policy that uses the same value to bound
// every transfer. The return value is a timeout policy that always
// returns the value d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// PerMethod constructs a timeout policy which bounds POST transfers by
// post and all other transfers by get.
func PerMethod(get, post time.Duration) Policy {
	return perMethod{get, post}
}

type fixed time.Duration

func (f fixed) Timeout(_ *transfer.Descriptor) time.Duration {
	return time.Duration(f)
}

type perMethod struct {
	get, post time.Duration
}

func (p perMethod) Timeout(d *transfer.Descriptor) time.Duration {
	if d.Post {
		return p.post
	}

	return p.get
}
