// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package apierr defines Error, the error model returned by the apix
// executor for failures which are not raw transport errors: an
// unresolvable URL, a transport result with no HTTP status, a
// server-reported status of 300 or more, and a response payload which
// is not valid JSON.
//
// Use errors.As to get the status code of a failed call:
//
//	var ae *apierr.Error
//	if errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound {
//		...
//	}
package apierr
