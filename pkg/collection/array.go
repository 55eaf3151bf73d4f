package collection

import (
	"fmt"
	"sort"

	"github.com/vango-dev/geom/pkg/observe"
)

// Element is what an Array can hold: a comparable, observable value,
// typically a pointer such as *geom.Vec2.
type Element interface {
	comparable
	observe.Observable
}

// Array is an ordered sequence of elements plus a name index.
//
// Invariant: revokes[i] is the subscription on elems[i]; both slices always
// have the same length.
type Array[T Element] struct {
	changes observe.Source
	elems   []T
	revokes []observe.Revoke
	names   map[string]T
}

// New creates an Array holding elems in order.
func New[T Element](elems ...T) *Array[T] {
	a := &Array[T]{names: make(map[string]T)}
	for _, e := range elems {
		a.elems = append(a.elems, e)
		a.revokes = append(a.revokes, a.watch(e))
	}
	return a
}

// Subscribe registers fn to run after structural edits and element changes.
func (a *Array[T]) Subscribe(fn observe.Callback) observe.Revoke {
	return a.changes.Subscribe(fn)
}

func (a *Array[T]) watch(e T) observe.Revoke {
	return e.Subscribe(a.changes.Notify)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// Elements returns a copy of the element sequence.
func (a *Array[T]) Elements() []T {
	out := make([]T, len(a.elems))
	copy(out, a.elems)
	return out
}

// SetElements replaces the whole sequence with a copy of elems. All previous
// subscriptions and all names are dropped. Notifies exactly once.
func (a *Array[T]) SetElements(elems []T) {
	for _, revoke := range a.revokes {
		revoke()
	}
	clear(a.names)

	a.elems = make([]T, len(elems))
	copy(a.elems, elems)
	a.revokes = make([]observe.Revoke, len(elems))
	for i, e := range a.elems {
		a.revokes[i] = a.watch(e)
	}

	a.changes.Notify()
}

// CopyElements makes this array hold the same element references as other.
// Names are not copied.
func (a *Array[T]) CopyElements(other *Array[T]) {
	a.SetElements(other.elems)
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= len(a.elems) {
		var zero T
		return zero, a.outOfBounds(index)
	}
	return a.elems[index], nil
}

// IndexOf returns the first index holding e, or -1.
func (a *Array[T]) IndexOf(e T) int {
	for i, existing := range a.elems {
		if existing == e {
			return i
		}
	}
	return -1
}

// Push appends e.
func (a *Array[T]) Push(e T) {
	a.insert(e, len(a.elems))
	a.changes.Notify()
}

// PushNamed appends e and binds name to it.
func (a *Array[T]) PushNamed(e T, name string) error {
	if err := a.checkNameFree(name); err != nil {
		return err
	}
	a.insert(e, len(a.elems))
	a.bind(name, e)
	a.changes.Notify()
	return nil
}

// Insert places e at index, shifting later elements. index may equal Len.
func (a *Array[T]) Insert(e T, index int) error {
	if index < 0 || index > len(a.elems) {
		return a.outOfBounds(index)
	}
	a.insert(e, index)
	a.changes.Notify()
	return nil
}

// InsertNamed is Insert followed by binding name to e.
func (a *Array[T]) InsertNamed(e T, index int, name string) error {
	if err := a.checkNameFree(name); err != nil {
		return err
	}
	if index < 0 || index > len(a.elems) {
		return a.outOfBounds(index)
	}
	a.insert(e, index)
	a.bind(name, e)
	a.changes.Notify()
	return nil
}

func (a *Array[T]) insert(e T, index int) {
	var zero T
	a.elems = append(a.elems, zero)
	copy(a.elems[index+1:], a.elems[index:])
	a.elems[index] = e

	a.revokes = append(a.revokes, nil)
	copy(a.revokes[index+1:], a.revokes[index:])
	a.revokes[index] = a.watch(e)
}

// Pop removes and returns the last element. It returns false, without
// notifying, when the array is empty. Names bound to the element remain.
func (a *Array[T]) Pop() (T, bool) {
	if len(a.elems) == 0 {
		var zero T
		return zero, false
	}
	e := a.remove(len(a.elems) - 1)
	a.changes.Notify()
	return e, true
}

// Remove deletes and returns the element at index. Names bound to the
// element remain.
func (a *Array[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(a.elems) {
		var zero T
		return zero, a.outOfBounds(index)
	}
	e := a.remove(index)
	a.changes.Notify()
	return e, nil
}

func (a *Array[T]) remove(index int) T {
	e := a.elems[index]
	a.revokes[index]()

	var zero T
	copy(a.elems[index:], a.elems[index+1:])
	a.elems[len(a.elems)-1] = zero
	a.elems = a.elems[:len(a.elems)-1]

	copy(a.revokes[index:], a.revokes[index+1:])
	a.revokes[len(a.revokes)-1] = nil
	a.revokes = a.revokes[:len(a.revokes)-1]

	return e
}

// AssignName binds name to the element currently at index.
// Naming does not notify.
func (a *Array[T]) AssignName(name string, index int) error {
	if err := a.checkNameFree(name); err != nil {
		return err
	}
	if index < 0 || index >= len(a.elems) {
		return a.outOfBounds(index)
	}
	a.bind(name, a.elems[index])
	return nil
}

// RemoveName unbinds name. Does not notify.
func (a *Array[T]) RemoveName(name string) error {
	if _, ok := a.names[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchName, name)
	}
	delete(a.names, name)
	return nil
}

// ByName returns the element bound to name. The element may no longer be
// part of the sequence.
func (a *Array[T]) ByName(name string) (T, error) {
	e, ok := a.names[name]
	if !ok {
		return e, fmt.Errorf("%w: %q", ErrNoSuchName, name)
	}
	return e, nil
}

// HasName reports whether name is bound.
func (a *Array[T]) HasName(name string) bool {
	_, ok := a.names[name]
	return ok
}

// Names returns the bound names in sorted order.
func (a *Array[T]) Names() []string {
	out := make([]string, 0, len(a.names))
	for name := range a.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Each calls fn for every element in order.
func (a *Array[T]) Each(fn func(i int, e T)) {
	for i, e := range a.elems {
		fn(i, e)
	}
}

// EachPair calls fn for every pair of neighbours (i, i+1).
// Arrays with fewer than two elements produce no calls.
func (a *Array[T]) EachPair(fn func(i int, prev, next T)) {
	for i := 0; i+1 < len(a.elems); i++ {
		fn(i, a.elems[i], a.elems[i+1])
	}
}

func (a *Array[T]) bind(name string, e T) {
	if a.names == nil {
		a.names = make(map[string]T)
	}
	a.names[name] = e
}

func (a *Array[T]) checkNameFree(name string) error {
	if _, ok := a.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrNameNotUnique, name)
	}
	return nil
}

func (a *Array[T]) outOfBounds(index int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfBounds, index, len(a.elems))
}
