// Package observe provides the change-notification primitive shared by every
// mutable geometry value.
//
// A Source holds an ordered list of callbacks. Types that can change embed a
// Source as an unexported field, expose Subscribe, and call Notify from their
// own setters once the new state is stored:
//
//	type Counter struct {
//	    changes observe.Source
//	    n       int
//	}
//
//	func (c *Counter) Subscribe(fn observe.Callback) observe.Revoke {
//	    return c.changes.Subscribe(fn)
//	}
//
//	func (c *Counter) Inc() {
//	    c.n++
//	    c.changes.Notify()
//	}
//
// # Delivery
//
// Notification is synchronous. Callbacks run on the mutator's stack, in
// subscription order, before the mutating call returns. A callback that
// panics unwinds through the mutator and the remaining callbacks of that
// round do not run.
//
// # Thread Safety
//
// Sources are not safe for concurrent use. The model assumes a single writer;
// callers that share values across goroutines must synchronize at their own
// boundary.
package observe
