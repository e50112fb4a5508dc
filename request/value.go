// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// A Value is a scalar query parameter or body field value. The set of
// implementations is closed: String, Int, Uint, Float, Float32, and
// Bool.
//
// A Value is serialized onto the wire using its String method.
type Value interface {
	fmt.Stringer
	value()
}

// String is a string Value. It renders verbatim.
type String string

// Int is an integer Value. It renders in base 10.
type Int int64

// Uint is an unsigned integer Value. It renders in base 10.
type Uint uint64

// Float is a floating point Value. It renders as the shortest decimal
// representation which round-trips, always with at least one
// fractional digit, so 1 renders as "1.0" and 2.5 as "2.5".
type Float float64

// Float32 is a single precision floating point Value. It renders like
// Float, but with the shortest representation that round-trips at 32
// bits, so float32(0.1) renders as "0.1".
type Float32 float32

// Bool is a boolean Value. It renders as "true" or "false".
type Bool bool

func (String) value() {}
func (Int) value()     {}
func (Uint) value()    {}
func (Float) value()   {}
func (Float32) value() {}
func (Bool) value()    {}

// String returns s.
func (s String) String() string {
	return string(s)
}

// String returns i in base 10.
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String returns u in base 10.
func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// String returns f in decimal notation.
func (f Float) String() string {
	return formatFloat(float64(f), 64)
}

// String returns f in decimal notation.
func (f Float32) String() string {
	return formatFloat(float64(f), 32)
}

func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if strings.IndexFunc(s, notIntegral) == -1 {
		s += ".0"
	}
	return s
}

func notIntegral(r rune) bool {
	return (r < '0' || r > '9') && r != '-'
}

// String returns "true" or "false".
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

const badValueTypeMsg = "apix/request: invalid type (for value use string, " +
	"bool, or an integer or floating point number)"

// ValueOf converts a Go scalar to a Value.
//
// Strings, booleans, and all the integer and floating point types are
// accepted, as are values which are already a Value. Any other type
// results in an error.
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint(v), nil
	case uint16:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Float32(v), nil
	case float64:
		return Float(v), nil
	default:
		return nil, fmt.Errorf("%s: %T", badValueTypeMsg, x)
	}
}

// Values maps parameter names to scalar values. It is used for both
// query parameters and form-encoded body fields.
type Values map[string]Value

// ValuesOf converts a map of Go scalars to Values using ValueOf. The
// first unconvertible value results in an error naming its key.
func ValuesOf(m map[string]interface{}) (Values, error) {
	if m == nil {
		return nil, nil
	}
	vs := make(Values, len(m))
	for k, x := range m {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("%w (key %q)", err, k)
		}
		vs[k] = v
	}
	return vs, nil
}

// URLValues converts vs to url.Values, rendering each value with its
// String method.
func (vs Values) URLValues() url.Values {
	uv := make(url.Values, len(vs))
	for k, v := range vs {
		if v == nil {
			uv.Set(k, "")
			continue
		}
		uv.Set(k, v.String())
	}
	return uv
}

// Encode encodes vs in URL-encoded form ("a=1&b=true") sorted by key.
func (vs Values) Encode() string {
	return vs.URLValues().Encode()
}
