// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apexlog

import (
	"context"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/gogama/apix"
	"github.com/gogama/apix/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.PanicsWithValue(t, "apix/apexlog: nil logger", func() {
		New(nil)
	})
}

func TestLogger_Log(t *testing.T) {
	testCases := []struct {
		c     apix.Category
		level log.Level
		fault bool
	}{
		{apix.Debug, log.DebugLevel, false},
		{apix.Info, log.InfoLevel, false},
		{apix.Default, log.InfoLevel, false},
		{apix.Error, log.ErrorLevel, false},
		{apix.Fault, log.ErrorLevel, true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.c.String(), func(t *testing.T) {
			h := memory.New()
			l := New(&log.Logger{Handler: h, Level: log.DebugLevel})
			l.Log(testCase.c, "[TITLE]", "- A: 1")
			require.Len(t, h.Entries, 1)
			entry := h.Entries[0]
			assert.Equal(t, testCase.level, entry.Level)
			assert.Equal(t, "[TITLE]", entry.Message)
			assert.Equal(t, testCase.c.String(), entry.Fields.Get("category"))
			assert.Equal(t, []string{"- A: 1"}, entry.Fields.Get("content"))
			if testCase.fault {
				assert.Equal(t, true, entry.Fields.Get("fault"))
			} else {
				assert.Nil(t, entry.Fields.Get("fault"))
			}
		})
	}
}

func TestWithExecutor(t *testing.T) {
	h := memory.New()
	x := &apix.Executor{
		Logger: New(&log.Logger{Handler: h, Level: log.DebugLevel}),
	}
	_, err := x.Do(context.Background(), request.Get(""), nil)
	require.Error(t, err)
	require.Len(t, h.Entries, 2)
	assert.Equal(t, "[PREPARING REQUEST][NETWORK MODEL]", h.Entries[0].Message)
	assert.Equal(t, log.DebugLevel, h.Entries[0].Level)
	assert.Equal(t, "[ERROR THROW][APIERROR]", h.Entries[1].Message)
	assert.Equal(t, log.ErrorLevel, h.Entries[1].Level)
}
