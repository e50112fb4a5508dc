// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/gogama/apix/apierr"
	"github.com/gogama/apix/request"
	"github.com/gogama/apix/transient"
)

// A Category is the severity of a log event.
type Category int

const (
	// Debug is for detailed diagnostic content such as the descriptor
	// of a call and its decoded result.
	Debug Category = iota
	// Info is for the normal progress of a call.
	Info
	// Default is for content with no particular severity.
	Default
	// Error is for failed calls.
	Error
	// Fault is for failures of the program itself.
	Fault
)

var categoryNames = []string{
	"debug",
	"info",
	"default",
	"error",
	"fault",
}

// Name returns the lower-case name of the category.
func (c Category) Name() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}

	return categoryNames[c]
}

// String returns the name of the category.
func (c Category) String() string {
	return c.Name()
}

// A Logger receives the log events of an Executor.
//
// Each event has a category and one or more lines of content. The first
// line is a bracketed title naming the pipeline stage, for example
// "[CREATED REQUEST][NETWORK REQUEST]", and the rest are "- Key: value"
// detail lines.
//
// Log is called synchronously on the goroutine making the call, so
// implementations shared by an Executor used concurrently must be safe
// for concurrent use.
type Logger interface {
	Log(c Category, content ...string)
}

// The LoggerFunc type is an adapter to allow the use of ordinary
// functions as loggers.
type LoggerFunc func(c Category, content ...string)

// Log calls f(c, content...).
func (f LoggerFunc) Log(c Category, content ...string) {
	f(c, content...)
}

// NewLogHandler returns a Handler which renders the events of a call
// as log events and sends them to l. An Executor with a non-nil Logger
// runs such a handler ahead of its own handlers, so NewLogHandler is
// only needed to log from a custom Doer.
func NewLogHandler(l Logger) Handler {
	if l == nil {
		panic("apix: nil logger")
	}

	return &logHandler{l}
}

type logHandler struct {
	l Logger
}

func (h *logHandler) Handle(evt Event, e *Execution) {
	switch evt {
	case BeforeBuild:
		h.preparing(e.Descriptor)
	case AfterBuild:
		h.created(e.Request)
	case AfterReceive:
		h.received(e)
	case AfterDecode:
		h.l.Log(Debug,
			"[RESPONSE PARSED][MODEL]",
			fmt.Sprintf("- Representation: %+v", representation(e.Result)))
	case OnError:
		h.thrown(e.Err)
	}
}

func (h *logHandler) preparing(d request.Descriptor) {
	h.l.Log(Debug,
		"[PREPARING REQUEST][NETWORK MODEL]",
		"- Headers: "+describeHeaders(d.Headers()),
		"- Query Params: "+describeValues(d.Query()),
		"- Body: "+describeValues(d.Body()),
		"- Request: "+d.Method().String())
}

func (h *logHandler) created(r *http.Request) {
	h.l.Log(Info,
		"[CREATED REQUEST][NETWORK REQUEST]",
		"- URL: "+r.URL.String(),
		"- Method: "+r.Method,
		"- Headers: "+fmt.Sprint(r.Header),
		"- Body: "+text(request.BodyBytes(r)))
}

func (h *logHandler) received(e *Execution) {
	u := "nil"
	if e.Response != nil && e.Response.URL() != nil {
		u = e.Response.URL().String()
	}
	status := "nil"
	if hr, ok := e.Response.(HTTPResponse); ok {
		status = strconv.Itoa(hr.StatusCode())
	}
	h.l.Log(Info,
		"[RESPONSE RECEIVED][RESPONSE]",
		"- Data: "+text(e.Body),
		"- URL: "+u,
		"- Status code: "+status)
}

func (h *logHandler) thrown(err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		h.l.Log(Error,
			"[ERROR THROW][APIERROR]",
			"- Error code: "+strconv.Itoa(apiErr.StatusCode),
			"- Localized Description: "+apiErr.Detail)
		return
	}

	h.l.Log(Error,
		"[ERROR THROW][ERROR]",
		"- Localized Description: "+err.Error(),
		"- Transient: "+transient.Categorize(err).String())
}

// representation dereferences the decode target so the value itself is
// rendered.
func representation(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return v
	}

	return reflect.Indirect(rv).Interface()
}

func describeHeaders(h map[string]string) string {
	if h == nil {
		return "nil"
	}

	return fmt.Sprint(h)
}

func describeValues(vs request.Values) string {
	if vs == nil {
		return "nil"
	}

	return fmt.Sprint(map[string]request.Value(vs))
}

// text renders a body as UTF-8 text, or "-" if it is empty or not
// valid UTF-8.
func text(b []byte) string {
	if len(b) == 0 || !utf8.Valid(b) {
		return "-"
	}

	return string(b)
}
