// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "apix/request: nil context"

	// FormContentType is the content type of a request body built from
	// Descriptor body fields.
	FormContentType = "application/x-www-form-urlencoded"
)

// NewHTTPRequest builds the wire-ready HTTP request described by d. The
// context of the new request is set to ctx, which may not be nil.
//
// The build proceeds as follows:
//
// • The URL is resolved using d.URL. Any error is returned unchanged.
//
// • The headers from d are attached verbatim. Header names are not
// canonicalized.
//
// • If d has query parameters, they replace the query string of the
// resolved URL.
//
// • If d has body fields, they are URL-encoded into the request body
// and, unless d's headers already name a Content-Type (in any case),
// the Content-Type header is set to FormContentType.
func NewHTTPRequest(ctx context.Context, d Descriptor) (*http.Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	m := d.Method()
	if !m.Valid() {
		return nil, fmt.Errorf("apix/request: invalid method %q", m)
	}
	u, err := d.URL()
	if err != nil {
		return nil, err
	}
	u2 := *u
	u = &u2
	u.Host = removeEmptyPort(u.Host)
	if q := d.Query(); q != nil {
		u.RawQuery = q.Encode()
	}

	r := template.WithContext(ctx)
	r.Method = string(m)
	r.URL = u
	r.Host = u.Host
	r.Header = make(http.Header)
	h := d.Headers()
	for k, v := range h {
		r.Header[k] = []string{v}
	}

	if b := d.Body(); b != nil {
		p := []byte(b.Encode())
		if len(p) > 0 {
			setBody(r, p)
			if !HasHeader(h, "Content-Type") {
				r.Header.Set("Content-Type", FormContentType)
			}
		}
	}

	return r, nil
}

// SetBody replaces the body of r with p. It is used to send an explicit
// payload in place of the form-encoded body fields.
func SetBody(r *http.Request, p []byte) {
	r.Body = nil
	r.GetBody = nil
	r.ContentLength = 0
	if len(p) > 0 {
		setBody(r, p)
	}
}

func setBody(r *http.Request, p []byte) {
	r.Body = ioutil.NopCloser(bytes.NewReader(p))
	r.GetBody = func() (io.ReadCloser, error) {
		return ioutil.NopCloser(bytes.NewReader(p)), nil
	}
	r.ContentLength = int64(len(p))
}

// BodyBytes returns a copy of the body of r without consuming it, or
// nil if r has no body or its body cannot be replayed.
func BodyBytes(r *http.Request) []byte {
	if r == nil || r.GetBody == nil {
		return nil
	}
	rc, err := r.GetBody()
	if err != nil {
		return nil
	}
	defer func() {
		_ = rc.Close()
	}()
	b, err := ioutil.ReadAll(rc)
	if err != nil {
		return nil
	}
	return b
}

// HasHeader reports whether h has a header named name, comparing names
// without regard to case.
func HasHeader(h map[string]string, name string) bool {
	for k := range h {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
