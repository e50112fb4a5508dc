// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apierr

import (
	"fmt"
)

// Status codes reserved for failures that did not come from a server.
// Server-reported failures use the HTTP status code of the response,
// which is always at least 300.
const (
	// StatusReset indicates the application needs to reset.
	StatusReset = 0
	// StatusNoResponse indicates the transport returned something
	// other than an HTTP response.
	StatusNoResponse = -1
	// StatusBadURL indicates a request descriptor could not be
	// resolved to a URL.
	StatusBadURL = -2
	// StatusParseError indicates the response payload was not
	// structurally valid JSON.
	StatusParseError = -3
	// StatusUnknown is a sentinel for test sessions which have neither
	// a payload nor an error to return.
	StatusUnknown = -5
)

// Detail is the structured error payload some servers return along
// with a failing status code:
//
//	{"detail": "Not found"}
type Detail struct {
	Detail string `json:"detail"`
}

// An Error is a failed API call.
//
// Two Errors are considered equal if they have the same status code,
// regardless of detail. Is implements this for errors.Is, so
//
//	errors.Is(err, apierr.NoResponse())
//
// reports whether err is, or wraps, any Error with status code
// StatusNoResponse.
type Error struct {
	// StatusCode is either the HTTP status code returned by the server
	// or one of the negative/zero Status constants in this package.
	StatusCode int
	// Detail is the human-readable description of the failure. For
	// server errors it is the structured detail, if the server sent
	// one, or the raw response body text.
	Detail string
}

// Reset returns an Error indicating the application needs to reset.
func Reset() *Error {
	return New(StatusReset, "App needs to reset")
}

// NoResponse returns an Error indicating the transport produced no
// HTTP response.
func NoResponse() *Error {
	return New(StatusNoResponse, "No response")
}

// BadURL returns an Error indicating url could not be parsed.
func BadURL(url string) *Error {
	return New(StatusBadURL, "URL can't be parsed: "+url)
}

// ParseError returns an Error indicating a response payload could not
// be decoded. The description should explain the decode failure.
func ParseError(description string) *Error {
	return New(StatusParseError, description)
}

// New returns an Error with the given status code and free-form
// detail text.
func New(statusCode int, detail string) *Error {
	return &Error{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// FromDetail returns an Error with the given status code and a
// structured detail payload.
func FromDetail(statusCode int, d Detail) *Error {
	return New(statusCode, d.Detail)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("apix: %d: %s", e.StatusCode, e.Detail)
}

// Code returns the status code of the error.
func (e *Error) Code() int {
	return e.StatusCode
}

// Is reports whether target is an *Error with the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return Equal(e, t)
}

// Equal reports whether a and b have the same status code. Detail is
// not compared. Two nil errors are equal; a nil and a non-nil error
// are not.
func Equal(a, b *Error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StatusCode == b.StatusCode
}
