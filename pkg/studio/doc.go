// Package studio implements the settings editor's save and cancel protocol.
//
// An Editor owns one field registry and talks to the host through a
// host.Runtime. Save emits save/start, collects the diff payload (overridden
// fields by value, everything else by name in defaults), detaches rich-text
// editors, and posts the payload asynchronously. Exactly one of save/end or
// error follows. Cancel detaches editors and emits cancel without any network
// call.
//
// Continuations run on a Scheduler. The default runs them on the request
// goroutine; UIs with an event loop pass a Scheduler that posts onto it.
//
// The editor also implements the one designed coupling between fields:
// selecting a stream option writes the option URL into the video URL field
// (overriding it) and fetches caption assets for the stream.
package studio
