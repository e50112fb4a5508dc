// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeBuild, events[BeforeBuild])
	assert.Equal(t, AfterBuild, events[AfterBuild])
	assert.Equal(t, AfterReceive, events[AfterReceive])
	assert.Equal(t, AfterDecode, events[AfterDecode])
	assert.Equal(t, OnError, events[OnError])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeBuild", BeforeBuild.Name())
	assert.Equal(t, "AfterBuild", AfterBuild.Name())
	assert.Equal(t, "AfterReceive", AfterReceive.Name())
	assert.Equal(t, "AfterDecode", AfterDecode.Name())
	assert.Equal(t, "OnError", OnError.String())
}
