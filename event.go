// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in an Executor to extend it with
// custom functionality.
type Event int

const (
	// BeforeBuild identifies the event that occurs before the HTTP
	// request is built from the descriptor.
	//
	// When Executor fires BeforeBuild, the execution's descriptor and
	// start time are set, but nothing else.
	BeforeBuild Event = iota
	// AfterBuild identifies the event that occurs after the HTTP
	// request is built but before it is sent.
	//
	// When Executor fires AfterBuild, the execution's request field is
	// set to the HTTP request that WILL BE sent after all AfterBuild
	// handlers have finished. Handlers may modify the request, or
	// replace it, for example to sign it.
	//
	// AfterBuild never fires if the request could not be built.
	AfterBuild
	// AfterReceive identifies the event that occurs after the Session
	// returns a response, before the response status is classified.
	//
	// When Executor fires AfterReceive, the execution's response and
	// body fields are set. AfterReceive never fires if the transport
	// call failed, but fires regardless of the response status.
	AfterReceive
	// AfterDecode identifies the event that occurs after a successful
	// response body has been decoded.
	//
	// When Executor fires AfterDecode, the execution's result field is
	// set to the decoded value.
	AfterDecode
	// OnError identifies the event that occurs when the call fails at
	// any stage.
	//
	// When Executor fires OnError, the execution's error field is set
	// to the error that will be returned to the caller, and its end time
	// is set. OnError fires at most once per call.
	OnError
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeBuild",
	"AfterBuild",
	"AfterReceive",
	"AfterDecode",
	"OnError",
}

// Events returns a slice containing all events which can occur during
// a call made by Executor, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeBuild,
		AfterBuild,
		AfterReceive,
		AfterDecode,
		OnError,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
