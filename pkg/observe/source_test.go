package observe

import "testing"

func TestSourceNotifyOrder(t *testing.T) {
	var s Source
	var got []int

	s.Subscribe(func() { got = append(got, 1) })
	s.Subscribe(func() { got = append(got, 2) })
	s.Subscribe(func() { got = append(got, 3) })

	s.Notify()

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("callbacks fired as %v, want [1 2 3]", got)
	}
}

func TestSourceNotifyWithoutSubscribers(t *testing.T) {
	var s Source
	s.Notify()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSourceDuplicateCallback(t *testing.T) {
	var s Source
	count := 0
	fn := func() { count++ }

	r1 := s.Subscribe(fn)
	r2 := s.Subscribe(fn)

	s.Notify()
	if count != 2 {
		t.Fatalf("duplicate callback fired %d times, want 2", count)
	}

	r1()
	s.Notify()
	if count != 3 {
		t.Errorf("after one revoke fired %d times total, want 3", count)
	}

	r2()
	s.Notify()
	if count != 3 {
		t.Errorf("after both revokes fired %d times total, want 3", count)
	}
}

func TestRevokeIsIdempotent(t *testing.T) {
	var s Source
	a, b := 0, 0

	revokeA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	revokeA()
	revokeA()
	revokeA()

	s.Notify()
	if a != 0 {
		t.Errorf("revoked callback fired %d times", a)
	}
	if b != 1 {
		t.Errorf("other callback fired %d times, want 1", b)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSourceClear(t *testing.T) {
	var s Source
	count := 0
	revoke := s.Subscribe(func() { count++ })
	s.Subscribe(func() { count++ })

	s.Clear()
	s.Notify()
	if count != 0 {
		t.Errorf("cleared callbacks fired %d times", count)
	}

	// Stale handle must not disturb later registrations.
	s.Subscribe(func() { count++ })
	revoke()
	s.Notify()
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSourceMutationDuringNotify(t *testing.T) {
	var s Source
	calls := 0
	var revokeSelf Revoke

	revokeSelf = s.Subscribe(func() {
		calls++
		revokeSelf()
		s.Subscribe(func() { calls += 10 })
	})
	s.Subscribe(func() { calls += 100 })

	s.Notify()
	if calls != 101 {
		t.Errorf("first round calls = %d, want 101", calls)
	}

	s.Notify()
	// Self-revoked callback is gone, the added one now fires.
	if calls != 211 {
		t.Errorf("second round calls = %d, want 211", calls)
	}
}

func TestSourcePanicStopsRound(t *testing.T) {
	var s Source
	later := 0
	s.Subscribe(func() { panic("boom") })
	s.Subscribe(func() { later++ })

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to reach the notifier")
			}
		}()
		s.Notify()
	}()

	if later != 0 {
		t.Errorf("callback after panicking one ran %d times", later)
	}
}
