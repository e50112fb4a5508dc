// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core type Route, a fluent description of
one API call, and the Descriptor interface it implements.

A Route names the HTTP method and the path segments of a call. The
optional base URL, headers, query parameters and body fields are set
with chained With methods:

	r := request.Post("users", "42", "notes").
		WithBaseURL("https://api.example.com/v1/").
		WithHeaders(map[string]string{"X-Trace": "abc"}).
		WithBody(request.Values{
			"title": request.String("hello"),
			"pinned": request.Bool(true),
		})

Query parameters and body fields are restricted to the scalar types
String, Int, Uint, Float, Float32 and Bool. Use ValueOf and ValuesOf to convert plain
Go values.

A Descriptor is turned into a wire-ready *http.Request by
NewHTTPRequest. Most programs never call NewHTTPRequest directly, but
instead hand the Route to an apix.Executor, which builds the request,
sends it, and decodes the JSON response.
*/
package request
