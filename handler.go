// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package synchttp

import (
	"fmt"

	"github.com/gogama/synchttp/transfer"
)

// A HandlerGroup holds one chain of handlers per Event. A Client with
// a HandlerGroup runs each chain at a fixed point of every request:
//
// • BeforeTransfer, once the descriptor is built and before the
// transport is invoked;
//
// • AfterTransfer or AfterTransferError, depending on whether the
// transport completed the transfer;
//
// • AfterRequestEnd, after the *Response or error has been produced.
//
// All handlers of a request receive the same *transfer.Execution. The
// zero value is an empty group ready to use.
type HandlerGroup struct {
	chains [numEvents][]Handler
}

// PushBack appends h to the chain run for evt. It panics if h is nil or
// evt is not one of the values returned by Events.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("synchttp: nil handler")
	}
	if evt < 0 || int(evt) >= numEvents {
		panic(fmt.Sprintf("synchttp: unknown event %d", int(evt)))
	}

	g.chains[evt] = append(g.chains[evt], h)
}

// Len returns the number of handlers in the chain for evt.
func (g *HandlerGroup) Len(evt Event) int {
	if evt < 0 || int(evt) >= numEvents {
		return 0
	}

	return len(g.chains[evt])
}

func (g *HandlerGroup) run(evt Event, e *transfer.Execution) {
	for _, h := range g.chains[evt] {
		h.Handle(evt, e)
	}
}

// A Handler observes, and may modify, a request's execution when an
// event fires. Changes a BeforeTransfer handler makes to the execution's
// descriptor apply to the transfer.
type Handler interface {
	Handle(Event, *transfer.Execution)
}

// HandlerFunc lets an ordinary function serve as a Handler.
type HandlerFunc func(Event, *transfer.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *transfer.Execution) {
	f(evt, e)
}
