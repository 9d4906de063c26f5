// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"testing"
	"time"

	"github.com/gogama/synchttp/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecution_StatusCode(t *testing.T) {
	e := &Execution{}
	t.Run("no Result", func(t *testing.T) {
		require.Nil(t, e.Result)
		assert.Equal(t, 0, e.StatusCode())
		assert.Equal(t, errcode.OK, e.ErrorCode())
	})
	t.Run("with Result", func(t *testing.T) {
		e.Result = &Result{Info: Info{HTTPCode: 999}}
		assert.Equal(t, 999, e.StatusCode())
	})
}

func TestExecution_TimeMethods(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		e := &Execution{}
		assert.False(t, e.Started())
		assert.False(t, e.Ended())
		assert.Equal(t, time.Duration(0), e.Duration())
	})
	t.Run("started but not ended", func(t *testing.T) {
		e := &Execution{}
		e.Start = time.Now()
		assert.True(t, e.Started())
		assert.False(t, e.Ended())
		time.Sleep(2*time.Millisecond + 50*time.Microsecond)
		d := e.Duration()
		assert.LessOrEqual(t, d, time.Since(e.Start))
		assert.GreaterOrEqual(t, d, 2*time.Millisecond)
	})
	t.Run("ended", func(t *testing.T) {
		e := &Execution{}
		e.Start = time.Now()
		time.Sleep(2*time.Millisecond + 50*time.Microsecond)
		e.End = time.Now()
		d := e.Duration()
		assert.Greater(t, d, 2*time.Millisecond)
		assert.True(t, e.Ended())
		time.Sleep(2*time.Millisecond + 50*time.Microsecond)
		assert.Equal(t, d, e.Duration())
	})
}

func TestExecution_Timeout(t *testing.T) {
	assert.False(t, (&Execution{}).Timeout())
	assert.False(t, (&Execution{Result: &Result{ErrorCode: errcode.CouldntConnect}}).Timeout())
	assert.True(t, (&Execution{Result: &Result{ErrorCode: errcode.OperationTimedout}}).Timeout())
}

func TestExecution_Value(t *testing.T) {
	t.Run("new Execution", func(t *testing.T) {
		e := &Execution{}
		assert.Nil(t, e.Value("foo"))
		e.SetValue("foo", "bar")
		assert.Equal(t, "bar", e.Value("foo"))
	})
	t.Run("different keys", func(t *testing.T) {
		type key1 struct{}
		type key2 struct{}
		e := &Execution{}
		e.SetValue(key1{}, 1)
		e.SetValue(key2{}, 2)
		assert.Equal(t, 1, e.Value(key1{}))
		assert.Equal(t, 2, e.Value(key2{}))
		e.SetValue(key1{}, 3)
		assert.Equal(t, 3, e.Value(key1{}))
	})
}
