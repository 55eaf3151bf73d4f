// Package collection provides Array, an ordered, observable list of
// observable elements with an optional name index.
//
// An Array subscribes to every element it holds and forwards each element
// change as its own notification. Structural edits (Push, Insert, Pop,
// Remove, SetElements) notify once per call; failed calls leave the array
// untouched and do not notify.
//
//	pts := collection.NewPoints()
//	pts.Subscribe(func() { fmt.Println("changed") })
//	p := geom.NewVec2(1, 2)
//	pts.PushNamed(p, "start") // prints "changed"
//	p.SetX(5)                 // prints "changed"
//
// # Names
//
// Names are metadata kept next to the element sequence, not inside it.
// Removing an element does not remove its name, so a name may resolve to an
// element the array no longer holds. Replacing the whole sequence with
// SetElements drops every name.
package collection
