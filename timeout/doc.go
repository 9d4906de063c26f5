// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for bounding the duration of a
// single transfer made by the synchttp client. A generic interface for
// timeout policies is provided, Policy, along with the built-in
// policies Infinite and Fixed.
//
// By default no timeout is set and a transfer blocks until the
// transport layer gives up or succeeds.
package timeout
