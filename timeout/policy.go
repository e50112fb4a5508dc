// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/apix/request"
)

// A Policy defines a timeout policy which may be plugged into the
// executor (apix.Executor) to direct how to set the timeout on the
// transport call made for a request Descriptor.
//
// The timeout covers sending the request and reading the complete
// response body. It is applied as a deadline on the context passed to
// the Session, on top of any deadline the caller's context already has.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the transport call for
	// the request described by d. A non-positive return value means
	// the call times out immediately.
	Timeout(d request.Descriptor) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 30 seconds on every call.
var DefaultPolicy Policy = Fixed(30 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that uses the same value for every
// call. The return value is a timeout policy that always returns d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// ByMethod constructs a timeout policy that varies the timeout by HTTP
// method.
//
// Parameter usual is the timeout returned for any method which is not a
// key in byMethod. The byMethod map is copied, so later changes to it
// don't affect the policy.
//
// Consider the following timeout policy:
//
// 	p := ByMethod(5*time.Second, map[request.Method]time.Duration{
// 		request.POST: 30 * time.Second,
// 	})
//
// The policy p allows uploads through POST to take up to 30 seconds but
// expects every other call to finish within 5 seconds.
func ByMethod(usual time.Duration, byMethod map[request.Method]time.Duration) Policy {
	m := make(map[request.Method]time.Duration, len(byMethod))
	for k, v := range byMethod {
		m[k] = v
	}

	return &methodPolicy{
		usual:    usual,
		byMethod: m,
	}
}

type fixed time.Duration

func (f fixed) Timeout(_ request.Descriptor) time.Duration {
	return time.Duration(f)
}

type methodPolicy struct {
	usual    time.Duration
	byMethod map[request.Method]time.Duration
}

func (p *methodPolicy) Timeout(d request.Descriptor) time.Duration {
	if t, ok := p.byMethod[d.Method()]; ok {
		return t
	}

	return p.usual
}
