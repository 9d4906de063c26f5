// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"errors"
	"testing"

	"github.com/gogama/synchttp/errcode"
	"github.com/gogama/synchttp/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "Uninitialized", Uninitialized.String())
	assert.Equal(t, "Ready", Ready.String())
	assert.Equal(t, "Closed", Closed.String())
	assert.Equal(t, "State(?)", State(99).String())
}

func TestHandle(t *testing.T) {
	t.Run("zero value", testHandleZeroValue)
	t.Run("lifecycle", testHandleLifecycle)
	t.Run("open error", testHandleOpenError)
	t.Run("execute", testHandleExecute)
}

func testHandleZeroValue(t *testing.T) {
	h := &Handle{}
	assert.Equal(t, Uninitialized, h.State())
	h.Reset()
	h.Release()
	assert.Equal(t, Uninitialized, h.State())
	res := h.Execute(&transfer.Descriptor{URL: "http://foo"})
	require.NotNil(t, res)
	assert.Equal(t, errcode.FailedInit, res.ErrorCode)
	assert.Equal(t, "http://foo", res.Info.URL)
	assert.Nil(t, res.RawOutput)
	assert.Nil(t, h.Applied())
}

func testHandleLifecycle(t *testing.T) {
	ctx1 := newMockContext(t)
	ctx2 := newMockContext(t)
	ctx3 := newMockContext(t)
	e := newMockEngine(t)
	e.On("Open").Return(ctx1, nil).Once()
	e.On("Open").Return(ctx2, nil).Once()
	e.On("Open").Return(ctx3, nil).Once()
	h := NewHandle(e)

	require.NoError(t, h.Initialize())
	assert.Equal(t, Ready, h.State())

	ctx1.On("Close").Return().Once()
	require.NoError(t, h.Initialize())
	assert.Equal(t, Ready, h.State())
	ctx1.AssertExpectations(t)

	ctx2.On("Close").Return().Once()
	h.Release()
	assert.Equal(t, Closed, h.State())
	h.Release()
	assert.Equal(t, Closed, h.State())
	ctx2.AssertExpectations(t)

	res := h.Execute(&transfer.Descriptor{})
	assert.Equal(t, errcode.FailedInit, res.ErrorCode)

	require.NoError(t, h.Initialize())
	assert.Equal(t, Ready, h.State())
	ctx3.On("Close").Return().Once()
	h.Release()
	ctx3.AssertExpectations(t)
	e.AssertExpectations(t)
}

func testHandleOpenError(t *testing.T) {
	cause := errors.New("no more handles")
	t.Run("from uninitialized", func(t *testing.T) {
		h := NewHandle(EngineFunc(func() (Context, error) {
			return nil, cause
		}))
		err := h.Initialize()
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "open transfer context")
		assert.Equal(t, Uninitialized, h.State())
	})
	t.Run("from ready", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.On("Close").Return().Once()
		opened := false
		h := NewHandle(EngineFunc(func() (Context, error) {
			if opened {
				return nil, cause
			}
			opened = true
			return ctx, nil
		}))
		require.NoError(t, h.Initialize())
		assert.ErrorIs(t, h.Initialize(), cause)
		assert.Equal(t, Closed, h.State())
		ctx.AssertExpectations(t)
	})
	t.Run("nil context", func(t *testing.T) {
		h := NewHandle(EngineFunc(func() (Context, error) {
			return nil, nil
		}))
		assert.Error(t, h.Initialize())
		assert.Equal(t, Uninitialized, h.State())
	})
}

func testHandleExecute(t *testing.T) {
	ctx := newMockContext(t)
	h := NewHandle(EngineFunc(func() (Context, error) {
		return ctx, nil
	}))
	require.NoError(t, h.Initialize())

	expected := &transfer.Result{RawOutput: []byte("hello")}
	ctx.On("Perform", mock.MatchedBy(func(d *transfer.Descriptor) bool {
		return d.URL == "http://foo" && d.HeaderLines[0] == "A: b"
	})).Return(expected).Once()

	d := &transfer.Descriptor{URL: "http://foo", HeaderLines: []string{"A: b"}}
	res := h.Execute(d)
	assert.Same(t, expected, res)
	d.HeaderLines[0] = "C: d"
	require.NotNil(t, h.Applied())
	assert.NotSame(t, d, h.Applied())
	assert.Equal(t, []string{"A: b"}, h.Applied().HeaderLines)

	h.Reset()
	assert.Nil(t, h.Applied())
	assert.Equal(t, Ready, h.State())
	ctx.AssertExpectations(t)
}

type mockEngine struct {
	mock.Mock
}

func newMockEngine(t *testing.T) *mockEngine {
	m := &mockEngine{}
	m.Test(t)
	return m
}

func (m *mockEngine) Open() (Context, error) {
	args := m.Called()
	ctx := args.Get(0)
	err := args.Error(1)
	if ctx == nil {
		return nil, err
	}
	return ctx.(Context), err
}

type mockContext struct {
	mock.Mock
}

func newMockContext(t *testing.T) *mockContext {
	m := &mockContext{}
	m.Test(t)
	return m
}

func (m *mockContext) Perform(d *transfer.Descriptor) *transfer.Result {
	args := m.Called(d)
	return args.Get(0).(*transfer.Result)
}

func (m *mockContext) Close() {
	m.Called()
}
