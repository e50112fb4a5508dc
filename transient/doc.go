// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies the raw transport errors which an
// apix.Session may return. The executor's log handler uses the
// classification to annotate failures, and Execution.Timeout uses it to
// report whether a call ended in a client-side timeout.
//
// Package transient depends only on the standard library, so it may be
// imported on its own to bucket errors in a custom event handler.
package transient
