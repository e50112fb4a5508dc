// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"errors"

	"github.com/gogama/apix/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes the call described by d, decodes the JSON response into
// v, and returns the final execution state (and error, if any).
// Executor implements the Doer interface, and any other Doer
// implementation must behave substantially the same as Executor.Do.
//
// Any Doer can be converted into a Caller via the Inflate function.
type Doer interface {
	Do(ctx context.Context, d request.Descriptor, v interface{}) (*Execution, error)
}

// Uploader is the interface that wraps the basic Upload method.
//
// Upload executes the call described by d, sending payload as the
// request body, and otherwise behaves like Doer.Do. Executor implements
// the Uploader interface, and any other Uploader implementation must
// behave substantially the same as Executor.Upload.
type Uploader interface {
	Upload(ctx context.Context, d request.Descriptor, payload []byte, v interface{}) (*Execution, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any connections which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Caller is the interface that groups the basic Do, Upload, and
// CloseIdleConnections methods.
//
// Any Doer can be converted into a Caller via the Inflate function.
type Caller interface {
	Doer
	Uploader
	IdleCloser
}

// ErrUploadUnsupported is returned by the Upload method of a Caller
// obtained from Inflate when the inflated Doer is not an Uploader.
var ErrUploadUnsupported = errors.New("apix: doer does not support upload")

// Execute uses d to execute the call described by r and returns the
// response decoded into a new value of type T.
//
// If the call fails, the zero value of T is returned along with the
// error.
//
//	type user struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//	u, err := apix.Execute[user](ctx, x, request.Get("users", "42").WithBaseURL(base))
func Execute[T any](ctx context.Context, d Doer, r request.Descriptor) (T, error) {
	var v T
	if _, err := d.Do(ctx, r, &v); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// ExecuteUpload uses u to execute the call described by r with payload
// as the request body, and returns the response decoded into a new value
// of type T.
func ExecuteUpload[T any](ctx context.Context, u Uploader, r request.Descriptor, payload []byte) (T, error) {
	var v T
	if _, err := u.Upload(ctx, r, payload, &v); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// Inflate converts any non-nil Doer into a Caller. This may be helpful
// for interop across library boundaries, i.e. if code that only has
// access to a Doer needs to call a function that requires a Caller.
func Inflate(d Doer) Caller {
	if d == nil {
		panic("apix: nil doer")
	}

	if c, ok := d.(Caller); ok {
		return c
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(ctx context.Context, d request.Descriptor, v interface{}) (*Execution, error) {
	return i.doer.Do(ctx, d, v)
}

func (i inflated) Upload(ctx context.Context, d request.Descriptor, payload []byte, v interface{}) (*Execution, error) {
	if u, ok := i.doer.(Uploader); ok {
		return u.Upload(ctx, d, payload, v)
	}

	return &Execution{Descriptor: d, Err: ErrUploadUnsupported}, ErrUploadUnsupported
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
