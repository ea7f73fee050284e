// Package event provides a minimal synchronous observer: listeners attach
// to a Host and are notified of named lifecycle events in attachment
// order. Dispatch is a plain call chain with no queuing, no goroutines,
// and no isolation between listeners.
package event

import "reflect"

// Event carries a lifecycle event name and its associated payload.
type Event struct {
	Name string
	Data map[string]any
}

// Listener receives event notifications.
type Listener interface {
	Handle(Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

// Handle calls f with the event.
func (f ListenerFunc) Handle(e Event) {
	f(e)
}

// Host holds an ordered collection of listeners and notifies them
// synchronously. The zero value is ready to use.
type Host struct {
	listeners []Listener
}

// NewHost creates a Host with no listeners attached.
func NewHost() *Host {
	return &Host{}
}

// Attach registers a listener. The same listener may be attached more
// than once; it will then be notified once per attachment.
func (h *Host) Attach(l Listener) {
	h.listeners = append(h.listeners, l)
}

// Detach removes the first attachment of the given listener and no-ops
// when it was never attached.
func (h *Host) Detach(l Listener) {
	for i, existing := range h.listeners {
		if sameListener(existing, l) {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Notify invokes every attached listener with the named event, in
// attachment order. A panicking listener propagates to the caller and
// aborts dispatch to the remaining listeners.
func (h *Host) Notify(name string, data map[string]any) {
	e := Event{Name: name, Data: data}
	for _, l := range h.listeners {
		l.Handle(e)
	}
}

// sameListener matches listeners by interface equality, falling back to
// referential identity for uncomparable dynamic types such as
// ListenerFunc.
func sameListener(a, b Listener) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
