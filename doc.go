// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package apix provides a small declarative client for JSON APIs: describe
a call with a request.Route, execute it with an Executor, and receive
the decoded response or a typed error.

Create an Executor to begin making calls. Its zero value is usable.

	type widget struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	x := &apix.Executor{}
	r := request.Get("widgets", "42").WithBaseURL("https://api.example.com/")
	w, err := apix.Execute[widget](ctx, x, r)

Failures which are not raw transport errors are reported as
*apierr.Error values, compared by status code:

	if errors.Is(err, apierr.NoResponse()) {
		...
	}
	var ae *apierr.Error
	if errors.As(err, &ae) && ae.StatusCode == 404 {
		...
	}

For control over how requests are sent, use a custom Session, or an
HTTPSession with a custom HTTPDoer:

	x := &apix.Executor{
		Session: &apix.HTTPSession{Doer: &http.Client{...}},
	}

For control over the timeout of each call, set a timeout policy using
package timeout:

	x := &apix.Executor{
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}

To log every stage of every call, set a Logger. Packages zaplog and
apexlog adapt popular structured loggers:

	x := &apix.Executor{
		Logger: zaplog.New(zapLogger),
	}

To hook into the fine-grained details of the call pipeline, install a
handler into the appropriate handler chain:

	handlers := &apix.HandlerGroup{}
	handlers.PushBack(apix.AfterBuild, apix.HandlerFunc(
		func(_ apix.Event, e *apix.Execution) {
			e.Request.Header.Set("Authorization", "Bearer "+token)
		}))
	x := &apix.Executor{
		Handlers: handlers,
	}

Package apix provides basic interfaces for each method of the executor
(Doer, Uploader and IdleCloser); a combined interface that composes them
(Caller); and generic functions for typed results (Execute and
ExecuteUpload).
*/
package apix
