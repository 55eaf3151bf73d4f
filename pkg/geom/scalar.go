package geom

import (
	"math"

	"github.com/vango-dev/geom/pkg/observe"
)

// Epsilon is the default tolerance for CloseTo comparisons.
const Epsilon = 0x1p-52

// Scalar is an observable float64.
type Scalar struct {
	changes  observe.Source
	value    float64
	snapshot *Scalar
}

// NewScalar creates a Scalar holding v.
func NewScalar(v float64) *Scalar {
	s := &Scalar{}
	s.SetSilent(v)
	return s
}

// Subscribe registers fn to run after every change.
func (s *Scalar) Subscribe(fn observe.Callback) observe.Revoke {
	return s.changes.Subscribe(fn)
}

// Value returns the current value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Set stores v and notifies if it differs from the current value.
func (s *Scalar) Set(v float64) {
	if s.value == v {
		return
	}
	s.value = v
	s.changes.Notify()
}

// SetSilent stores v without notifying.
func (s *Scalar) SetSilent(v float64) {
	s.value = v
}

// Copy sets s to other's value.
func (s *Scalar) Copy(other *Scalar) {
	s.Set(other.value)
}

// Clone returns an independent Scalar with the same value.
func (s *Scalar) Clone() *Scalar {
	return NewScalar(s.value)
}

// Equals reports exact equality.
func (s *Scalar) Equals(other *Scalar) bool {
	return other != nil && s.value == other.value
}

// CloseTo reports whether the values differ by at most delta.
// A delta <= 0 uses Epsilon.
func (s *Scalar) CloseTo(other *Scalar, delta float64) bool {
	if delta <= 0 {
		delta = Epsilon
	}
	return math.Abs(s.value-other.value) <= delta
}

// Snap records the current value for a later Drag.
func (s *Scalar) Snap() {
	s.snapshot = s.Clone()
}

// Drag sets the value to the snapped value plus offset.
// It does nothing if Snap was never called.
func (s *Scalar) Drag(offset float64) {
	if s.snapshot == nil {
		return
	}
	s.Set(s.snapshot.value + offset)
}
