package observe

// Callback is invoked when an observed value changes.
type Callback func()

// Revoke removes the subscription it was returned for.
// Calling it more than once is a no-op.
type Revoke func()

// Observable is anything that reports its own changes.
type Observable interface {
	Subscribe(fn Callback) Revoke
}

// subscription is one registration. Registrations are compared by pointer,
// so subscribing the same callback twice yields two independent entries.
type subscription struct {
	fn Callback
}

// Source is an ordered list of subscriber callbacks.
// The zero value is ready to use.
type Source struct {
	subs []*subscription
}

// Subscribe registers fn and returns a handle that removes exactly this
// registration.
func (s *Source) Subscribe(fn Callback) Revoke {
	sub := &subscription{fn: fn}
	s.subs = append(s.subs, sub)

	return func() {
		s.remove(sub)
	}
}

// remove drops sub if it is still registered.
func (s *Source) remove(sub *subscription) {
	for i, existing := range s.subs {
		if existing == sub {
			// Keep order: callbacks fire in subscription order.
			copy(s.subs[i:], s.subs[i+1:])
			s.subs[len(s.subs)-1] = nil
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// Notify invokes every registered callback in subscription order.
// The list is copied first so callbacks may subscribe or revoke freely.
func (s *Source) Notify() {
	if len(s.subs) == 0 {
		return
	}

	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)

	for _, sub := range subs {
		if sub.fn != nil {
			sub.fn()
		}
	}
}

// Clear removes every registration without invoking it.
// Handles returned earlier become no-ops.
func (s *Source) Clear() {
	for i := range s.subs {
		s.subs[i] = nil
	}
	s.subs = nil
}

// Len returns the number of live registrations.
func (s *Source) Len() int {
	return len(s.subs)
}
