package geom

import (
	"math"

	"github.com/vango-dev/geom/pkg/observe"
)

// Vec2 is an observable 2D vector.
type Vec2 struct {
	changes  observe.Source
	x, y     float64
	snapshot *Vec2
}

// NewVec2 creates a vector at (x, y).
func NewVec2(x, y float64) *Vec2 {
	v := &Vec2{}
	v.SetSilent(x, y)
	return v
}

// Subscribe registers fn to run after every change.
func (v *Vec2) Subscribe(fn observe.Callback) observe.Revoke {
	return v.changes.Subscribe(fn)
}

func (v *Vec2) X() float64 { return v.x }
func (v *Vec2) Y() float64 { return v.y }

// Set updates both coordinates and notifies once if either changed.
func (v *Vec2) Set(x, y float64) {
	if v.x == x && v.y == y {
		return
	}
	v.x, v.y = x, y
	v.changes.Notify()
}

func (v *Vec2) SetX(x float64) { v.Set(x, v.y) }
func (v *Vec2) SetY(y float64) { v.Set(v.x, y) }

// SetSilent updates both coordinates without notifying.
func (v *Vec2) SetSilent(x, y float64) {
	v.x, v.y = x, y
}

// Copy sets v to other's coordinates.
func (v *Vec2) Copy(other *Vec2) {
	v.Set(other.x, other.y)
}

// Clone returns an independent vector with the same coordinates.
// The snapshot is not carried over.
func (v *Vec2) Clone() *Vec2 {
	return NewVec2(v.x, v.y)
}

// Equals reports exact coordinate equality.
func (v *Vec2) Equals(other *Vec2) bool {
	return other != nil && v.x == other.x && v.y == other.y
}

// Snap freezes a copy of the current coordinates for Drag.
func (v *Vec2) Snap() {
	v.snapshot = v.Clone()
}

// Snapshot returns a copy of the frozen coordinates, or nil.
func (v *Vec2) Snapshot() *Vec2 {
	if v.snapshot == nil {
		return nil
	}
	return v.snapshot.Clone()
}

// Drag moves v to snapshot + offset. No-op without a snapshot.
func (v *Vec2) Drag(offset *Vec2) {
	if v.snapshot == nil {
		return
	}
	v.Set(v.snapshot.x+offset.x, v.snapshot.y+offset.y)
}

// Add returns v + o.
func (v *Vec2) Add(o *Vec2) *Vec2 {
	return NewVec2(v.x+o.x, v.y+o.y)
}

// Sub returns v - o.
func (v *Vec2) Sub(o *Vec2) *Vec2 {
	return NewVec2(v.x-o.x, v.y-o.y)
}

// Scale returns v * s.
func (v *Vec2) Scale(s float64) *Vec2 {
	return NewVec2(v.x*s, v.y*s)
}

func (v *Vec2) Dot(o *Vec2) float64 {
	return v.x*o.x + v.y*o.y
}

// Cross returns the z component of the 3D cross product.
func (v *Vec2) Cross(o *Vec2) float64 {
	return v.x*o.y - v.y*o.x
}

func (v *Vec2) Length() float64 {
	return math.Hypot(v.x, v.y)
}

func (v *Vec2) DistanceTo(o *Vec2) float64 {
	return math.Hypot(v.x-o.x, v.y-o.y)
}

// Lerp returns the point at fraction t from v towards o.
func (v *Vec2) Lerp(o *Vec2, t float64) *Vec2 {
	return NewVec2(v.x+(o.x-v.x)*t, v.y+(o.y-v.y)*t)
}
