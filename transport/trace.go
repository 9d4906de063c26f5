// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"net"
	"net/http/httptrace"
	"strconv"
	"sync"
	"time"

	"github.com/gogama/synchttp/transfer"
)

// A tracer records the timing milestones of one transfer. Trace hooks
// may fire on dialer goroutines, so all fields are guarded by mu.
type tracer struct {
	mu           sync.Mutex
	start        time.Time
	dnsDone      time.Time
	connectDone  time.Time
	gotConn      time.Time
	firstByte    time.Time
	remoteAddr   string
	wroteRequest bool
}

func newTracer() *tracer {
	return &tracer{start: time.Now()}
}

func (t *tracer) withContext(ctx context.Context) context.Context {
	return httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		DNSDone: func(httptrace.DNSDoneInfo) {
			t.mark(&t.dnsDone)
		},
		ConnectDone: func(_, _ string, err error) {
			if err == nil {
				t.mark(&t.connectDone)
			}
		},
		GotConn: func(info httptrace.GotConnInfo) {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.gotConn = time.Now()
			if info.Conn != nil {
				t.remoteAddr = info.Conn.RemoteAddr().String()
			}
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.wroteRequest = info.Err == nil
		},
		GotFirstResponseByte: func() {
			t.mark(&t.firstByte)
		},
	})
}

func (t *tracer) mark(field *time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	*field = time.Now()
}

// fill copies the recorded milestones into info, as durations since
// the start of the transfer.
func (t *tracer) fill(info *transfer.Info, requestSize int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info.NameLookupTime = t.since(t.dnsDone)
	info.ConnectTime = t.since(t.connectDone)
	info.PreTransferTime = t.since(t.gotConn)
	info.StartTransferTime = t.since(t.firstByte)
	info.TotalTime = time.Since(t.start)
	if t.wroteRequest {
		info.SizeUpload = int64(requestSize)
	}
	if host, port, err := net.SplitHostPort(t.remoteAddr); err == nil {
		info.PrimaryIP = host
		info.PrimaryPort, _ = strconv.Atoi(port)
	}
}

func (t *tracer) since(mark time.Time) time.Duration {
	if mark.IsZero() {
		return 0
	}
	return mark.Sub(t.start)
}
