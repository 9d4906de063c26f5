// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package errcode

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// ErrTooManyRedirects is returned by a transfer engine's redirect
// policy when the redirect limit is reached. Categorize maps it, and
// any error wrapping it, to TooManyRedirects.
var ErrTooManyRedirects = errors.New("errcode: maximum redirects followed")

// Categorize returns the transfer error code for the given error. A
// nil error produces OK. Every non-nil error produces a code other
// than OK: errors that fit no more specific code produce RecvError.
//
// In assessing the code, Categorize looks at wrapped cause errors
// contained within err, not just err itself. Cancellation is checked
// first, then timeouts, so a DNS lookup or dial that fails because its
// deadline expired is reported as OperationTimedout.
func Categorize(err error) Code {
	if err == nil {
		return OK
	}

	if errors.Is(err, context.Canceled) {
		return AbortedByCallback
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return OperationTimedout
	}

	if errors.Is(err, ErrTooManyRedirects) {
		return TooManyRedirects
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if errors.As(err, &opErr) && opErr.Op == "proxyconnect" {
			return CouldntResolveProxy
		}
		return CouldntResolveHost
	}

	if code := categorizeTLS(err); code != OK {
		return code
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.EHOSTUNREACH, syscall.ENETUNREACH:
			return CouldntConnect
		case syscall.ECONNRESET:
			return RecvError
		case syscall.EPIPE:
			return SendError
		}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return PartialFile
	}
	if errors.Is(err, io.EOF) {
		return GotNothing
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return URLMalformat
	}

	if code := categorizeMessage(err.Error()); code != OK {
		return code
	}

	if opErr != nil || errors.As(err, &opErr) {
		switch opErr.Op {
		case "dial", "proxyconnect":
			return CouldntConnect
		case "write":
			return SendError
		}
	}

	return RecvError
}

func categorizeTLS(err error) Code {
	var unknownAuthority x509.UnknownAuthorityError
	var certInvalid x509.CertificateInvalidError
	var hostname x509.HostnameError
	var verification *tls.CertificateVerificationError
	if errors.As(err, &unknownAuthority) || errors.As(err, &certInvalid) ||
		errors.As(err, &hostname) || errors.As(err, &verification) {
		return PeerFailedVerification
	}

	var recordHeader tls.RecordHeaderError
	var alert tls.AlertError
	if errors.As(err, &recordHeader) || errors.As(err, &alert) {
		return SSLConnectError
	}

	return OK
}

// categorizeMessage recognizes the net/http errors which are created
// with errors.New or fmt.Errorf and therefore carry no type.
func categorizeMessage(msg string) Code {
	switch {
	case strings.Contains(msg, "unsupported protocol scheme"):
		return UnsupportedProtocol
	case strings.Contains(msg, "no Host in request URL"),
		strings.Contains(msg, "invalid URL"):
		return URLMalformat
	case strings.Contains(msg, "malformed HTTP"),
		strings.Contains(msg, "server gave HTTP response to HTTPS client"):
		return WeirdServerReply
	case strings.Contains(msg, "tls: "):
		return SSLConnectError
	case strings.Contains(msg, "server closed idle connection"):
		return GotNothing
	}

	return OK
}

type hasTimeout interface {
	Timeout() bool
}
