// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name       string
		err        *Error
		statusCode int
		detail     string
	}{
		{"Reset", Reset(), StatusReset, "App needs to reset"},
		{"NoResponse", NoResponse(), StatusNoResponse, "No response"},
		{"BadURL", BadURL("::foo"), StatusBadURL, "URL can't be parsed: ::foo"},
		{"ParseError", ParseError("unexpected end of JSON input"), StatusParseError, "unexpected end of JSON input"},
		{"New", New(404, "Not found"), 404, "Not found"},
		{"FromDetail", FromDetail(500, Detail{Detail: "boom"}), 500, "boom"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.statusCode, testCase.err.StatusCode)
			assert.Equal(t, testCase.statusCode, testCase.err.Code())
			assert.Equal(t, testCase.detail, testCase.err.Detail)
			assert.Equal(t, fmt.Sprintf("apix: %d: %s", testCase.statusCode, testCase.detail), testCase.err.Error())
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("same status different detail", func(t *testing.T) {
		assert.True(t, Equal(New(404, "Not found"), New(404, "Gone fishing")))
	})
	t.Run("different status", func(t *testing.T) {
		assert.False(t, Equal(New(404, "x"), New(500, "x")))
	})
	t.Run("nil", func(t *testing.T) {
		assert.True(t, Equal(nil, nil))
		assert.False(t, Equal(nil, NoResponse()))
		assert.False(t, Equal(NoResponse(), nil))
	})
}

func TestError_Is(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		assert.True(t, errors.Is(BadURL("a"), BadURL("b")))
		assert.False(t, errors.Is(BadURL("a"), ParseError("a")))
	})
	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("calling widgets: %w", NoResponse())
		assert.True(t, errors.Is(err, NoResponse()))
		var ae *Error
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, StatusNoResponse, ae.StatusCode)
	})
	t.Run("other error types", func(t *testing.T) {
		assert.False(t, NoResponse().Is(errors.New("No response")))
		var nilErr *Error
		assert.False(t, NoResponse().Is(nilErr))
	})
}
