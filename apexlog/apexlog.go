// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package apexlog adapts an apex/log logger into an apix.Logger.
package apexlog

import (
	"github.com/apex/log"
	"github.com/gogama/apix"
)

// Logger is an apix.Logger which writes to an apex/log logger.
type Logger struct {
	l log.Interface
}

// New returns a Logger writing to l. The first content line of each
// event is the entry message, and the remaining lines are attached as
// the "content" field. Categories map onto levels the same way as in
// package zaplog.
func New(l log.Interface) *Logger {
	if l == nil {
		panic("apix/apexlog: nil logger")
	}

	return &Logger{l}
}

// Log implements apix.Logger.
func (l *Logger) Log(c apix.Category, content ...string) {
	var msg string
	if len(content) > 0 {
		msg = content[0]
	}

	e := l.l.WithField("category", c.String())
	if len(content) > 1 {
		e = e.WithField("content", content[1:])
	}

	switch c {
	case apix.Debug:
		e.Debug(msg)
	case apix.Error:
		e.Error(msg)
	case apix.Fault:
		e.WithField("fault", true).Error(msg)
	default:
		e.Info(msg)
	}
}
