// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package errcode

import "fmt"

// A Code is the numeric outcome of a single HTTP transfer, as reported
// by function Categorize().
//
// The code OK means the transfer completed. Every other code means the
// transfer failed at the transport level: the HTTP exchange did not
// complete, so there is no trustworthy status code or body. Note that
// an HTTP error status such as 404 or 500 is not a transport failure
// and always produces OK.
type Code int

const (
	// OK indicates the transfer completed without a transport error.
	OK Code = 0
	// UnsupportedProtocol indicates the URL scheme is not one the
	// transfer engine can speak.
	UnsupportedProtocol Code = 1
	// FailedInit indicates the transfer context could not be
	// initialized, or a transfer was attempted on a closed context.
	FailedInit Code = 2
	// URLMalformat indicates the URL could not be parsed, or is missing
	// a host.
	URLMalformat Code = 3
	// CouldntResolveProxy indicates the proxy host name could not be
	// resolved.
	CouldntResolveProxy Code = 5
	// CouldntResolveHost indicates the remote host name could not be
	// resolved.
	CouldntResolveHost Code = 6
	// CouldntConnect indicates the connection to the remote host (or
	// proxy) was refused or could not be established.
	CouldntConnect Code = 7
	// WeirdServerReply indicates the server sent something that is not
	// a valid HTTP response.
	WeirdServerReply Code = 8
	// PartialFile indicates the response body ended before the size
	// the server announced.
	PartialFile Code = 18
	// OperationTimedout indicates the transfer exceeded its timeout.
	OperationTimedout Code = 28
	// SSLConnectError indicates the TLS handshake failed.
	SSLConnectError Code = 35
	// AbortedByCallback indicates the transfer was cancelled by the
	// caller, for example through context cancellation.
	AbortedByCallback Code = 42
	// TooManyRedirects indicates the redirect limit was reached.
	TooManyRedirects Code = 47
	// GotNothing indicates the server closed the connection without
	// sending any response.
	GotNothing Code = 52
	// SendError indicates a failure while sending the request.
	SendError Code = 55
	// RecvError indicates a failure while receiving the response. It
	// is also the code for transport failures which fit no more
	// specific code.
	RecvError Code = 56
	// PeerFailedVerification indicates the server's TLS certificate or
	// host name could not be verified.
	PeerFailedVerification Code = 60
)

type codeInfo struct {
	name string
	text string
}

var codes = map[Code]codeInfo{
	OK:                     {"CURLE_OK", "No error"},
	UnsupportedProtocol:    {"CURLE_UNSUPPORTED_PROTOCOL", "Unsupported protocol"},
	FailedInit:             {"CURLE_FAILED_INIT", "Failed initialization"},
	URLMalformat:           {"CURLE_URL_MALFORMAT", "URL using bad/illegal format or missing URL"},
	CouldntResolveProxy:    {"CURLE_COULDNT_RESOLVE_PROXY", "Couldn't resolve proxy name"},
	CouldntResolveHost:     {"CURLE_COULDNT_RESOLVE_HOST", "Couldn't resolve host name"},
	CouldntConnect:         {"CURLE_COULDNT_CONNECT", "Couldn't connect to server"},
	WeirdServerReply:       {"CURLE_WEIRD_SERVER_REPLY", "Weird server reply"},
	PartialFile:            {"CURLE_PARTIAL_FILE", "Transferred a partial file"},
	OperationTimedout:      {"CURLE_OPERATION_TIMEDOUT", "Timeout was reached"},
	SSLConnectError:        {"CURLE_SSL_CONNECT_ERROR", "SSL connect error"},
	AbortedByCallback:      {"CURLE_ABORTED_BY_CALLBACK", "Operation was aborted by an application callback"},
	TooManyRedirects:       {"CURLE_TOO_MANY_REDIRECTS", "Number of redirects hit maximum amount"},
	GotNothing:             {"CURLE_GOT_NOTHING", "Server returned nothing (no headers, no data)"},
	SendError:              {"CURLE_SEND_ERROR", "Failed sending data to the peer"},
	RecvError:              {"CURLE_RECV_ERROR", "Failure when receiving data from the peer"},
	PeerFailedVerification: {"CURLE_PEER_FAILED_VERIFICATION", "SSL peer certificate or SSH remote key was not OK"},
}

// Codes returns a slice containing every code known to this package,
// in ascending numeric order.
func Codes() []Code {
	return []Code{
		OK,
		UnsupportedProtocol,
		FailedInit,
		URLMalformat,
		CouldntResolveProxy,
		CouldntResolveHost,
		CouldntConnect,
		WeirdServerReply,
		PartialFile,
		OperationTimedout,
		SSLConnectError,
		AbortedByCallback,
		TooManyRedirects,
		GotNothing,
		SendError,
		RecvError,
		PeerFailedVerification,
	}
}

// Name returns the canonical name of the code, for example
// "CURLE_COULDNT_RESOLVE_HOST" for CouldntResolveHost. Unknown codes
// are named "CURLE_UNKNOWN_<n>".
func (c Code) Name() string {
	if info, ok := codes[c]; ok {
		return info.name
	}

	return fmt.Sprintf("CURLE_UNKNOWN_%d", int(c))
}

// Strerror returns a human-readable description of the code, in the
// style of curl_easy_strerror.
func (c Code) Strerror() string {
	if info, ok := codes[c]; ok {
		return info.text
	}

	return "Unknown error"
}

// String returns the canonical name of the code.
func (c Code) String() string {
	return c.Name()
}
