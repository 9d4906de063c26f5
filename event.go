// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeTransfer identifies the event that occurs after the
	// transfer descriptor has been built and before it is handed to
	// the transport.
	//
	// When Client fires BeforeTransfer, the execution's descriptor is
	// set to the descriptor that WILL BE executed after all
	// BeforeTransfer handlers have finished. Handlers may modify the
	// descriptor, for example to add a header line or change its
	// timeout.
	BeforeTransfer Event = iota
	// AfterTransfer identifies the event that occurs after the
	// transport completed a transfer successfully, regardless of the
	// HTTP status code.
	//
	// When Client fires AfterTransfer, the execution's result is set
	// and its error code is errcode.OK.
	AfterTransfer
	// AfterTransferError identifies the event that occurs after the
	// transport failed to complete a transfer.
	//
	// When Client fires AfterTransferError, the execution's result is
	// set and its error code is not errcode.OK.
	AfterTransferError
	// AfterRequestEnd identifies the event that occurs after the
	// request ends, whether in a Response or a ClientError.
	//
	// When Client fires AfterRequestEnd, the execution's end time is
	// set.
	AfterRequestEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeTransfer",
	"AfterTransfer",
	"AfterTransferError",
	"AfterRequestEnd",
}

// Events returns a slice containing all events which can occur during
// a request made by Client, in the order in which they would occur.
// Only one of AfterTransfer and AfterTransferError occurs in any one
// request.
func Events() []Event {
	return []Event{
		BeforeTransfer,
		AfterTransfer,
		AfterTransferError,
		AfterRequestEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
