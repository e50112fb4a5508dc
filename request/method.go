// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Method is the HTTP method of a request descriptor.
type Method string

// The methods a request descriptor may use.
const (
	GET    Method = "GET"
	POST   Method = "POST"
	PATCH  Method = "PATCH"
	PUT    Method = "PUT"
	DELETE Method = "DELETE"
)

// Methods returns all supported methods.
func Methods() []Method {
	return []Method{GET, POST, PATCH, PUT, DELETE}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case GET, POST, PATCH, PUT, DELETE:
		return true
	default:
		return false
	}
}

// String returns the method name.
func (m Method) String() string {
	return string(m)
}
