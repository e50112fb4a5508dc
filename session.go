// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gogama/apix/request"
	"golang.org/x/net/http2"
)

// A Session performs the network I/O for an Executor.
//
// Data sends r and returns the complete response body together with
// the response metadata. Upload does the same, but sends payload as the
// request body in place of any body r already has.
//
// If the call fails at the transport level, the error is returned and
// the Executor propagates it to its caller unchanged. Response metadata
// which does not implement HTTPResponse is treated by the Executor as
// the absence of an HTTP response.
//
// HTTPSession is the standard Session implementation. Test code
// typically replaces it with a mock.
type Session interface {
	Data(r *http.Request) ([]byte, Response, error)
	Upload(r *http.Request, payload []byte) ([]byte, Response, error)
}

// A Response is the metadata of a response received by a Session.
type Response interface {
	// URL returns the URL the response was received from, or nil if
	// unknown.
	URL() *url.URL
}

// An HTTPResponse is the metadata of an HTTP response.
type HTTPResponse interface {
	Response
	// StatusCode returns the HTTP status code, e.g. 200.
	StatusCode() int
	// Header returns the HTTP response headers.
	Header() http.Header
}

// NewResponse returns non-HTTP response metadata for the URL u.
func NewResponse(u *url.URL) Response {
	return response{u}
}

// NewHTTPResponse returns HTTP response metadata backed by r. The body
// of r is ignored.
func NewHTTPResponse(r *http.Response) HTTPResponse {
	if r == nil {
		panic("apix: nil response")
	}

	return httpResponse{r}
}

type response struct {
	url *url.URL
}

func (r response) URL() *url.URL {
	return r.url
}

type httpResponse struct {
	r *http.Response
}

func (r httpResponse) URL() *url.URL {
	if r.r.Request == nil {
		return nil
	}

	return r.r.Request.URL
}

func (r httpResponse) StatusCode() int {
	return r.r.StatusCode
}

func (r httpResponse) Header() http.Header {
	return r.r.Header
}

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// An HTTPSession is a Session which sends requests through an HTTPDoer.
// Its zero value is a valid configuration which uses http.DefaultClient
// (from net/http).
//
// HTTPSession reads and buffers the entire HTTP response body, closing
// it afterward. The HTTPDoer is responsible for all other details of
// sending the request and receiving the response, such as redirects,
// so consult its documentation to understand how they are handled.
type HTTPSession struct {
	// Doer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If Doer is nil, http.DefaultClient is used.
	Doer HTTPDoer
}

// NewHTTP2Session returns an HTTPSession whose doer is an http.Client
// with a dedicated transport configured for HTTP/2 over TLS.
func NewHTTP2Session() (*HTTPSession, error) {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:       &tls.Config{},
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if err := http2.ConfigureTransport(t); err != nil {
		return nil, err
	}

	return &HTTPSession{
		Doer: &http.Client{Transport: t},
	}, nil
}

// Data sends r and returns the complete response body.
//
// If the doer returns an error, it is returned unchanged along with
// nil body and metadata. If reading the body fails, the read error is
// returned along with whatever body was read and the response metadata.
func (s *HTTPSession) Data(r *http.Request) ([]byte, Response, error) {
	resp, err := s.doer().Do(r)
	if err != nil {
		return nil, nil, err
	}

	return readBody(resp)
}

// Upload sends a copy of r having payload as its body. The request r
// itself is not modified.
func (s *HTTPSession) Upload(r *http.Request, payload []byte) ([]byte, Response, error) {
	r2 := r.Clone(r.Context())
	request.SetBody(r2, payload)
	return s.Data(r2)
}

// CloseIdleConnections invokes the same method on the session's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (s *HTTPSession) CloseIdleConnections() {
	if ic, ok := s.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (s *HTTPSession) doer() HTTPDoer {
	if s.Doer == nil {
		return http.DefaultClient
	}

	return s.Doer
}

func readBody(resp *http.Response) ([]byte, Response, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := ioutil.ReadAll(resp.Body)
	return b, NewHTTPResponse(resp), err
}
