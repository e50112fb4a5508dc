// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"errors"
	"testing"

	"github.com/gogama/apix/apierr"
	"github.com/gogama/apix/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	d := request.Get("widgets", "3").WithBaseURL(testBaseURL)
	t.Run("OK", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.Anything, d, mock.AnythingOfType("*apix.widget")).
			Run(func(args mock.Arguments) {
				w := args.Get(2).(*widget)
				w.ID = 3
				w.Name = "c"
			}).
			Return(&Execution{}, nil).Once()
		w, err := Execute[widget](context.Background(), m, d)
		require.NoError(t, err)
		assert.Equal(t, widget{ID: 3, Name: "c"}, w)
		m.AssertExpectations(t)
	})
	t.Run("error returns zero value", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.Anything, d, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(2).(*widget).ID = 99
			}).
			Return(&Execution{}, apierr.NoResponse()).Once()
		w, err := Execute[widget](context.Background(), m, d)
		assert.True(t, errors.Is(err, apierr.NoResponse()))
		assert.Equal(t, widget{}, w)
		m.AssertExpectations(t)
	})
	t.Run("Executor", func(t *testing.T) {
		s := newMockSession(t)
		s.On("Data", mock.Anything).Return([]byte(`[1,2,3]`), httpResp(200, testBaseURL), nil).Once()
		x := &Executor{Session: s}
		v, err := Execute[[]int](context.Background(), x, d)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, v)
	})
}

func TestExecuteUpload(t *testing.T) {
	d := request.Put("widgets", "3").WithBaseURL(testBaseURL)
	payload := []byte(`{"name":"d"}`)
	t.Run("OK", func(t *testing.T) {
		s := newMockSession(t)
		s.On("Upload", mock.Anything, payload).Return([]byte(`{"id":3,"name":"d"}`), httpResp(200, testBaseURL), nil).Once()
		x := &Executor{Session: s}
		w, err := ExecuteUpload[widget](context.Background(), x, d, payload)
		require.NoError(t, err)
		assert.Equal(t, widget{ID: 3, Name: "d"}, w)
		s.AssertExpectations(t)
	})
	t.Run("error", func(t *testing.T) {
		s := newMockSession(t)
		s.On("Upload", mock.Anything, payload).Return([]byte(`{"detail":"conflict"}`), httpResp(409, testBaseURL), nil).Once()
		x := &Executor{Session: s}
		w, err := ExecuteUpload[*widget](context.Background(), x, d, payload)
		assert.Nil(t, w)
		assert.EqualError(t, err, "apix: 409: conflict")
	})
}

func TestInflate(t *testing.T) {
	t.Run("Inflate", func(t *testing.T) {
		t.Run("nil doer", func(t *testing.T) {
			assert.PanicsWithValue(t, "apix: nil doer", func() {
				Inflate(nil)
			})
		})
		t.Run("already a Caller", func(t *testing.T) {
			x := &Executor{}
			c := Inflate(x)
			assert.Same(t, x, c)
		})
		t.Run("not yet a Caller", func(t *testing.T) {
			m := newMockDoer(t)
			c := Inflate(m)
			_, ok := c.(inflated)
			assert.True(t, ok)
		})
	})
	d := request.Patch("widgets", "1").WithBaseURL(testBaseURL)
	expected := &Execution{}
	t.Run("Do", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.Anything, d, nil).Return(expected, nil).Once()
		c := Inflate(m)
		e, err := c.Do(context.Background(), d, nil)
		assert.Same(t, expected, e)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("Upload", func(t *testing.T) {
		t.Run("Doer implements Uploader", func(t *testing.T) {
			m := newMockUploadDoer(t)
			m.On("Upload", mock.Anything, d, []byte("x"), nil).Return(expected, nil).Once()
			c := Inflate(m)
			e, err := c.Upload(context.Background(), d, []byte("x"), nil)
			assert.Same(t, expected, e)
			assert.NoError(t, err)
			m.AssertExpectations(t)
		})
		t.Run("Doer does not implement Uploader", func(t *testing.T) {
			m := newMockDoer(t)
			c := Inflate(m)
			e, err := c.Upload(context.Background(), d, []byte("x"), nil)
			assert.Same(t, ErrUploadUnsupported, err)
			require.NotNil(t, e)
			assert.Same(t, ErrUploadUnsupported, e.Err)
			assert.Same(t, d, e.Descriptor)
			m.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
		})
	})
	t.Run("CloseIdleConnections", func(t *testing.T) {
		t.Run("Doer does not implement IdleCloser", func(t *testing.T) {
			m := newMockDoer(t)
			c := Inflate(m)
			c.CloseIdleConnections()
			m.AssertNotCalled(t, "CloseIdleConnections")
		})
		t.Run("Doer implements IdleCloser", func(t *testing.T) {
			m := newMockDoerWithCloseIdleConnections(t)
			m.On("CloseIdleConnections").Once()
			c := Inflate(m)
			c.CloseIdleConnections()
			m.AssertExpectations(t)
		})
	})
}

type mockDoer struct {
	mock.Mock
}

func newMockDoer(t *testing.T) *mockDoer {
	m := &mockDoer{}
	m.Test(t)
	return m
}

func (m *mockDoer) Do(ctx context.Context, d request.Descriptor, v interface{}) (*Execution, error) {
	args := m.Called(ctx, d, v)
	e := args.Get(0)
	err := args.Error(1)
	if e == nil {
		return nil, err
	}
	return e.(*Execution), err
}

type mockUploadDoer struct {
	mockDoer
}

func newMockUploadDoer(t *testing.T) *mockUploadDoer {
	m := &mockUploadDoer{}
	m.Test(t)
	return m
}

func (m *mockUploadDoer) Upload(ctx context.Context, d request.Descriptor, payload []byte, v interface{}) (*Execution, error) {
	args := m.Called(ctx, d, payload, v)
	e := args.Get(0)
	err := args.Error(1)
	if e == nil {
		return nil, err
	}
	return e.(*Execution), err
}

type mockDoerWithCloseIdleConnections struct {
	mockDoer
}

func newMockDoerWithCloseIdleConnections(t *testing.T) *mockDoerWithCloseIdleConnections {
	m := &mockDoerWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
