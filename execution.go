// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"net/http"
	"time"

	"github.com/gogama/apix/request"
	"github.com/gogama/apix/transient"
)

// An Execution represents the state of a single call made by an
// Executor.
//
// When a call is requested, an Execution is created for it. The
// Execution is updated as the call progresses through the pipeline
// (when the request is built, when the response is received, when it is
// decoded) and is ultimately returned alongside the call's result.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. However, they
// should treat the exported fields as immutable, with the limited
// exception of making reasonable changes to Request during the
// AfterBuild event (for example to sign it).
type Execution struct {
	// Descriptor describes the call being executed. It is never nil.
	Descriptor request.Descriptor

	// Start is the start time of the call. It is set before the
	// BeforeBuild event fires and remains constant thereafter.
	Start time.Time

	// End is the end time of the call. It contains the zero value until
	// the call ends.
	End time.Time

	// Request is the HTTP request built from Descriptor. It is nil
	// before the AfterBuild event, and stays nil if the build fails.
	Request *http.Request

	// Response is the response metadata returned by the Session. It is
	// nil until the AfterReceive event, and may remain nil if the
	// transport call failed.
	Response Response

	// Body is the complete response body returned by the Session.
	Body []byte

	// Result is the value the response body was decoded into. It is
	// nil until the AfterDecode event.
	Result interface{}

	// Err is the error which ended the call, if any. Once the call has
	// ended, Err has the same value as the error returned by the
	// Executor.
	Err error

	data context.Context
}

// StatusCode returns the HTTP status code of the response. If there is
// no HTTP response, 0 is returned.
func (e *Execution) StatusCode() int {
	if hr, ok := e.Response.(HTTPResponse); ok {
		return hr.StatusCode()
	}

	return 0
}

// Header returns the HTTP response headers. If there is no HTTP
// response, the nil header is returned.
//
// A nil return value is always safe for read-only operations, since
// http.Header is a map type.
func (e *Execution) Header() http.Header {
	if hr, ok := e.Response.(HTTPResponse); ok {
		return hr.Header()
	}

	var nilHeader http.Header
	return nilHeader
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Now().Sub(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. Once it returns
// true there will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout, either due to the executor's timeout
// policy or to a deadline on the caller's context.
func (e *Execution) Timeout() bool {
	cat := transient.Categorize(e.Err)
	return cat == transient.Timeout
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
