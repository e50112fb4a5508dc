// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package zaplog adapts a zap logger into an apix.Logger.
//
// Each log event becomes one zap entry. The first content line, which
// is the bracketed stage title, is the entry message. The remaining
// lines are attached as the "content" field, and the event category as
// the "category" field:
//
//	x := &apix.Executor{
//		Logger: zaplog.New(logger.Named("apix")),
//	}
package zaplog

import (
	"github.com/gogama/apix"
	"go.uber.org/zap"
)

// Logger is an apix.Logger which writes to a zap logger.
type Logger struct {
	z *zap.Logger
}

// New returns a Logger writing to z. Categories map onto zap levels as
// follows: Debug to Debug; Info and Default to Info; Error to Error;
// and Fault to Error with the field fault=true.
func New(z *zap.Logger) *Logger {
	if z == nil {
		panic("apix/zaplog: nil logger")
	}

	return &Logger{z}
}

// Log implements apix.Logger.
func (l *Logger) Log(c apix.Category, content ...string) {
	var msg string
	if len(content) > 0 {
		msg = content[0]
	}

	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.Stringer("category", c))
	if len(content) > 1 {
		fields = append(fields, zap.Strings("content", content[1:]))
	}

	switch c {
	case apix.Debug:
		l.z.Debug(msg, fields...)
	case apix.Error:
		l.z.Error(msg, fields...)
	case apix.Fault:
		l.z.Error(msg, append(fields, zap.Bool("fault", true))...)
	default:
		l.z.Info(msg, fields...)
	}
}
