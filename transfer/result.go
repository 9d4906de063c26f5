// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"time"

	"github.com/gogama/synchttp/errcode"
)

// A Result is the raw outcome of one transfer, as returned by a
// transfer engine.
//
// Engines never signal a transport failure with a Go error return.
// Instead, ErrorCode is set to a value other than errcode.OK and the
// remaining fields hold whatever the engine had when the transfer
// failed.
type Result struct {
	// RawOutput is everything the engine buffered: the response header
	// block (only if the descriptor's IncludeHeader was set) followed
	// by the response body. It is nil if nothing was received, which
	// is distinct from an empty, non-nil slice.
	//
	// If ErrorCode is not OK, RawOutput may hold a partial response.
	RawOutput []byte

	// Info holds the transfer metadata captured by the engine. On
	// failure it holds whatever was known at the time of failure.
	Info Info

	// ErrorCode is OK if the transfer completed and the code of the
	// transport failure otherwise.
	ErrorCode errcode.Code

	// ErrorMessage is a human-readable description of the transport
	// failure. It is empty when ErrorCode is OK.
	ErrorMessage string

	// Err is the underlying Go error that caused the failure, if any.
	Err error
}

// OK reports whether the transfer completed without a transport error.
func (r *Result) OK() bool {
	return r.ErrorCode == errcode.OK
}

// Fail sets the result's error fields from err, which must be non-nil.
// The code is chosen by errcode.Categorize.
func (r *Result) Fail(err error) {
	r.ErrorCode = errcode.Categorize(err)
	r.ErrorMessage = err.Error()
	r.Err = err
}

// Info is the metadata of one transfer. The fields mirror the values
// libcurl reports through curl_easy_getinfo, and Map renders them with
// the same key names.
type Info struct {
	// URL is the effective URL: the last URL requested, which differs
	// from the descriptor URL if redirects were followed.
	URL string
	// HTTPCode is the status code of the last response, or zero if no
	// response was received.
	HTTPCode int
	// HeaderSize is the length in bytes of the response header block
	// at the start of the raw output. It is zero unless the
	// descriptor's IncludeHeader was set.
	HeaderSize int
	// RequestSize is the length in bytes of the request body sent.
	RequestSize int
	// ContentType is the Content-Type response header value.
	ContentType string
	// RedirectCount is the number of redirects followed.
	RedirectCount int
	// SizeUpload is the number of body bytes sent.
	SizeUpload int64
	// SizeDownload is the number of body bytes received.
	SizeDownload int64
	// NameLookupTime is the time from start until name resolution
	// completed.
	NameLookupTime time.Duration
	// ConnectTime is the time from start until the connection was
	// established.
	ConnectTime time.Duration
	// PreTransferTime is the time from start until the request was
	// about to be written.
	PreTransferTime time.Duration
	// StartTransferTime is the time from start until the first
	// response byte arrived.
	StartTransferTime time.Duration
	// TotalTime is the duration of the whole transfer.
	TotalTime time.Duration
	// PrimaryIP is the IP address of the most recent connection.
	PrimaryIP string
	// PrimaryPort is the port of the most recent connection.
	PrimaryPort int
}

// Map returns the metadata as a map keyed by curl_getinfo names. Times
// are float64 seconds.
func (i Info) Map() map[string]interface{} {
	return map[string]interface{}{
		"url":                i.URL,
		"http_code":          i.HTTPCode,
		"header_size":        i.HeaderSize,
		"request_size":       i.RequestSize,
		"content_type":       i.ContentType,
		"redirect_count":     i.RedirectCount,
		"size_upload":        i.SizeUpload,
		"size_download":      i.SizeDownload,
		"namelookup_time":    i.NameLookupTime.Seconds(),
		"connect_time":       i.ConnectTime.Seconds(),
		"pretransfer_time":   i.PreTransferTime.Seconds(),
		"starttransfer_time": i.StartTransferTime.Seconds(),
		"total_time":         i.TotalTime.Seconds(),
		"primary_ip":         i.PrimaryIP,
		"primary_port":       i.PrimaryPort,
	}
}
