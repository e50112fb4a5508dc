// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// Not means the error is not a recognized transport condition, so the
// same call is unlikely to succeed if repeated. Every other category
// names a condition which may clear up on its own.
type Category int

const (
	// Not indicates any error which is not transient, including nil.
	Not Category = iota
	// Timeout indicates a client-side timeout, either from the
	// executor's timeout policy or from a deadline on the caller's
	// context.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout method that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED). This happens while a service is starting
	// or restarting and is not yet listening on its port.
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// TCP connection (syscall.ECONNRESET), typically because a load
	// balancer or a prematurely stopped service dropped it.
	ConnReset
	// Canceled indicates the caller's context was canceled before the
	// call completed.
	Canceled
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"Canceled",
}

// Name returns the name of the category.
func (c Category) Name() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}

	return categoryNames[c]
}

// String returns the name of the category.
func (c Category) String() string {
	return c.Name()
}

// Categorize returns the transience category of err. A nil error, and
// an error that is not transient, both produce Not.
//
// Categorize looks at the wrapped causes of err, not just err itself.
// It never consults a Temporary method, as the semantics of Temporary
// aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
