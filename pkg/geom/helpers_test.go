package geom

import "github.com/vango-dev/geom/pkg/observe"

// testCounter counts notifications from one observable.
type testCounter struct {
	count  int
	revoke observe.Revoke
}

func watch(o observe.Observable) *testCounter {
	c := &testCounter{}
	c.revoke = o.Subscribe(func() { c.count++ })
	return c
}
