// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gogama/apix/apierr"
	"github.com/gogama/apix/request"
	"github.com/gogama/apix/timeout"
)

// A CachePolicy determines which caching headers the Executor adds to
// each request.
type CachePolicy int

const (
	// ReloadIgnoringCache asks every cache between the client and the
	// origin server to revalidate, by adding "Cache-Control: no-cache"
	// and "Pragma: no-cache" unless the descriptor already names those
	// headers.
	ReloadIgnoringCache CachePolicy = iota
	// UseProtocolCachePolicy adds no caching headers, leaving caching
	// to the HTTP protocol defaults and to the Session.
	UseProtocolCachePolicy
)

func (p CachePolicy) apply(r *http.Request, h map[string]string) {
	if p != ReloadIgnoringCache {
		return
	}

	if !request.HasHeader(h, "Cache-Control") {
		r.Header.Set("Cache-Control", "no-cache")
	}
	if !request.HasHeader(h, "Pragma") {
		r.Header.Set("Pragma", "no-cache")
	}
}

var emptyHandlers = HandlerGroup{}

// An Executor performs API calls described by request descriptors and
// decodes their JSON responses. Its zero value is a valid configuration.
//
// The zero value executor uses a zero HTTPSession (and thus
// http.DefaultClient) as the session, timeout.DefaultPolicy as the
// timeout policy, ReloadIgnoringCache as the cache policy, no logger,
// and an empty handler group.
//
// Executor holds no mutable state of its own, so it is safe for
// concurrent use by multiple goroutines provided its Session, Logger
// and Handlers are.
//
// Each call runs through the following pipeline on the calling
// goroutine:
//
// • The descriptor is built into an *http.Request by
// request.NewHTTPRequest, and the cache policy headers are added. A
// descriptor whose URL cannot be resolved fails the call with an
// *apierr.Error having status code apierr.StatusBadURL.
//
// • The request is sent through the Session with a context deadline set
// by the timeout policy. A transport error fails the call and is
// returned unchanged.
//
// • Response metadata that is not an HTTPResponse fails the call with
// apierr.NoResponse. A status code of 300 or more fails the call with an
// *apierr.Error carrying the status code and, as its detail, either the
// non-empty "detail" member of a JSON body or else the raw body text.
//
// • Otherwise, the body is decoded as JSON. Malformed JSON, including an
// empty body, fails the call with apierr.ParseError. Well-formed JSON
// which does not fit the target fails the call with the error returned
// by encoding/json.
//
// Every failure fires the OnError event exactly once, and every failure
// reaches the caller.
type Executor struct {
	// Session performs the network I/O.
	//
	// If Session is nil, a zero HTTPSession is used.
	Session Session
	// Logger receives a log event at each stage of every call.
	//
	// If Logger is nil, nothing is logged.
	Logger Logger
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a call. They run after the
	// Logger's handler.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// TimeoutPolicy specifies how to set the timeout on the transport
	// call.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// CachePolicy specifies the caching headers added to each request.
	CachePolicy CachePolicy
}

// Do executes the call described by d and decodes the JSON response
// body into v, which must be a pointer or nil. If v is nil, the body is
// not decoded and is available as the Body field of the returned
// Execution.
//
// The returned Execution is never nil. If an error is returned, the
// Err field of the Execution references the same error.
func (x *Executor) Do(ctx context.Context, d request.Descriptor, v interface{}) (*Execution, error) {
	return x.execute(ctx, d, nil, false, v)
}

// Upload is like Do, but sends payload as the request body through the
// Session's Upload method, in place of any form-encoded body fields in
// d. The Content-Type header is taken from d.
func (x *Executor) Upload(ctx context.Context, d request.Descriptor, payload []byte, v interface{}) (*Execution, error) {
	return x.execute(ctx, d, payload, true, v)
}

// CloseIdleConnections invokes the same method on the executor's
// Session.
//
// If the Session has no CloseIdleConnections method, this method does
// nothing.
func (x *Executor) CloseIdleConnections() {
	if ic, ok := x.session().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (x *Executor) execute(ctx context.Context, d request.Descriptor, payload []byte, upload bool, v interface{}) (*Execution, error) {
	if d == nil {
		panic("apix: nil descriptor")
	}

	e := &Execution{
		Descriptor: d,
	}

	var lh Handler
	if x.Logger != nil {
		lh = NewLogHandler(x.Logger)
	}

	handlers := x.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	fire := func(evt Event) {
		if lh != nil {
			lh.Handle(evt, e)
		}
		handlers.run(evt, e)
	}

	fail := func(err error) (*Execution, error) {
		e.Err = err
		e.End = time.Now()
		fire(OnError)
		return e, err
	}

	e.Start = time.Now()
	fire(BeforeBuild)

	r, err := request.NewHTTPRequest(ctx, d)
	if err != nil {
		return fail(err)
	}
	if upload {
		request.SetBody(r, payload)
	}
	x.CachePolicy.apply(r, d.Headers())
	e.Request = r
	fire(AfterBuild)

	e.Body, e.Response, err = x.sendAndReceive(ctx, e.Request, payload, upload, x.timeoutPolicy().Timeout(d))
	if err != nil {
		return fail(err)
	}
	fire(AfterReceive)

	if err = classify(e.Response, e.Body); err != nil {
		return fail(err)
	}

	if v != nil {
		if err = decode(e.Body, v); err != nil {
			return fail(err)
		}
		e.Result = v
		fire(AfterDecode)
	}

	e.End = time.Now()
	return e, nil
}

func (x *Executor) sendAndReceive(ctx context.Context, r *http.Request, payload []byte, upload bool, t time.Duration) ([]byte, Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t)
	defer cancel()
	r = r.WithContext(ctx)
	if upload {
		return x.session().Upload(r, payload)
	}

	return x.session().Data(r)
}

func (x *Executor) session() Session {
	if x.Session == nil {
		return &HTTPSession{}
	}

	return x.Session
}

func (x *Executor) timeoutPolicy() timeout.Policy {
	if x.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return x.TimeoutPolicy
}

// classify maps response metadata to a failure, or nil if the body
// should be decoded.
func classify(resp Response, body []byte) error {
	hr, ok := resp.(HTTPResponse)
	if !ok {
		return apierr.NoResponse()
	}

	status := hr.StatusCode()
	if status < 300 {
		return nil
	}

	var detail apierr.Detail
	if json.Unmarshal(body, &detail) == nil && detail.Detail != "" {
		return apierr.FromDetail(status, detail)
	}

	return apierr.New(status, string(body))
}

func decode(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apierr.ParseError(syntaxErr.Error())
	}

	return err
}
