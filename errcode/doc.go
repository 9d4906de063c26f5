// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package errcode classifies errors from an HTTP transfer into numeric
// transfer error codes, and gives each code a canonical name and a
// human-readable description.
//
// Code values follow libcurl's CURLcode numbering, so a code reported
// by this package means the same thing as the exit status of curl(1)
// for the same failure: 6 is always "couldn't resolve host", 28 is
// always "timeout", and so on.
//
// Package errcode is lightweight, as it depends only on standard
// library packages, so it doesn't bring any significant dependencies
// when imported as a standalone package.
package errcode
