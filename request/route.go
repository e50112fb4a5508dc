// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	urlpkg "net/url"
	"strings"

	"github.com/gogama/apix/apierr"
)

// A Descriptor describes one logical HTTP call before it is built into
// a wire-ready http.Request.
//
// Route is the standard Descriptor implementation. Other
// implementations must behave substantially the same as Route, in
// particular URL must fail with an *apierr.Error having status code
// apierr.StatusBadURL if the URL cannot be resolved.
type Descriptor interface {
	// Method returns the HTTP method.
	Method() Method
	// URL resolves the URL to send the request to.
	URL() (*urlpkg.URL, error)
	// Headers returns the request headers, or nil if there are none.
	Headers() map[string]string
	// Query returns the query parameters, or nil if there are none.
	Query() Values
	// Body returns the form-encoded body fields, or nil if there is no
	// body.
	Body() Values
}

// A Route is a fluent, chainable request Descriptor.
//
// Create a Route with one of the per-method constructors, passing the
// path segments, then configure it with the With methods:
//
//	r := request.Get("widgets", "42").
//		WithBaseURL("https://api.example.com/").
//		WithHeaders(map[string]string{"Accept": "application/json"}).
//		WithQuery(request.Values{"expand": request.Bool(true)})
//
// The With methods modify the Route in place and return it. Each call
// replaces the previously stored value of its field entirely, so
// calling WithHeaders twice keeps only the second set of headers.
//
// A Route is not safe for concurrent modification, but once fully
// configured it may be executed concurrently.
type Route struct {
	method   Method
	segments []string
	baseURL  string
	headers  map[string]string
	query    Values
	body     Values
}

// NewRoute returns a new Route for the given method and path segments.
//
// Use Get, Post, Patch, Put, or Delete instead unless the method is
// only known at runtime.
func NewRoute(method Method, segments ...string) *Route {
	s := make([]string, len(segments))
	copy(s, segments)
	return &Route{
		method:   method,
		segments: s,
	}
}

// Get returns a new GET Route with the given path segments.
func Get(segments ...string) *Route {
	return NewRoute(GET, segments...)
}

// Post returns a new POST Route with the given path segments.
func Post(segments ...string) *Route {
	return NewRoute(POST, segments...)
}

// Patch returns a new PATCH Route with the given path segments.
func Patch(segments ...string) *Route {
	return NewRoute(PATCH, segments...)
}

// Put returns a new PUT Route with the given path segments.
func Put(segments ...string) *Route {
	return NewRoute(PUT, segments...)
}

// Delete returns a new DELETE Route with the given path segments.
func Delete(segments ...string) *Route {
	return NewRoute(DELETE, segments...)
}

// WithBaseURL sets the string prepended to the joined path segments.
//
// The base URL is concatenated as-is: no slash is inserted between it
// and the path, so a base URL which should be followed by a path
// usually ends in "/".
func (r *Route) WithBaseURL(baseURL string) *Route {
	r.baseURL = baseURL
	return r
}

// WithHeaders sets the request headers. Header names are sent exactly
// as given, without canonicalization.
func (r *Route) WithHeaders(headers map[string]string) *Route {
	r.headers = headers
	return r
}

// WithQuery sets the query parameters. When the Route is built, they
// replace any query string already present in the resolved URL.
func (r *Route) WithQuery(query Values) *Route {
	r.query = query
	return r
}

// WithBody sets the body fields, which are sent form-encoded.
func (r *Route) WithBody(body Values) *Route {
	r.body = body
	return r
}

// Method returns the HTTP method.
func (r *Route) Method() Method {
	return r.method
}

// Segments returns a copy of the path segments.
func (r *Route) Segments() []string {
	s := make([]string, len(r.segments))
	copy(s, r.segments)
	return s
}

// BaseURL returns the base URL, or the empty string if none was set.
func (r *Route) BaseURL() string {
	return r.baseURL
}

// Headers returns the request headers.
func (r *Route) Headers() map[string]string {
	return r.headers
}

// Query returns the query parameters.
func (r *Route) Query() Values {
	return r.query
}

// Body returns the body fields.
func (r *Route) Body() Values {
	return r.body
}

// RawURL returns the unparsed URL: the base URL followed by the path
// segments joined with "/".
func (r *Route) RawURL() string {
	return r.baseURL + strings.Join(r.segments, "/")
}

// URL parses RawURL and returns the result, without any normalization.
//
// A relative result is valid: a Route with no base URL and segments
// "a" and "b" resolves to the relative reference "a/b". If RawURL is
// empty or cannot be parsed, the returned error is an *apierr.Error
// with status code apierr.StatusBadURL.
func (r *Route) URL() (*urlpkg.URL, error) {
	raw := r.RawURL()
	if raw == "" {
		return nil, apierr.BadURL(raw)
	}
	u, err := urlpkg.Parse(raw)
	if err != nil {
		return nil, apierr.BadURL(raw)
	}
	return u, nil
}
