package geom

import (
	"math"

	"github.com/vango-dev/geom/pkg/observe"
)

// Vec3 is an observable 3D vector.
type Vec3 struct {
	changes observe.Source
	x, y, z float64
}

// NewVec3 creates a vector at (x, y, z).
func NewVec3(x, y, z float64) *Vec3 {
	v := &Vec3{}
	v.SetSilent(x, y, z)
	return v
}

// Subscribe registers fn to run after every change.
func (v *Vec3) Subscribe(fn observe.Callback) observe.Revoke {
	return v.changes.Subscribe(fn)
}

func (v *Vec3) X() float64 { return v.x }
func (v *Vec3) Y() float64 { return v.y }
func (v *Vec3) Z() float64 { return v.z }

// Set updates all coordinates and notifies once if any changed.
func (v *Vec3) Set(x, y, z float64) {
	if v.x == x && v.y == y && v.z == z {
		return
	}
	v.x, v.y, v.z = x, y, z
	v.changes.Notify()
}

func (v *Vec3) SetX(x float64) { v.Set(x, v.y, v.z) }
func (v *Vec3) SetY(y float64) { v.Set(v.x, y, v.z) }
func (v *Vec3) SetZ(z float64) { v.Set(v.x, v.y, z) }

// SetSilent updates all coordinates without notifying.
func (v *Vec3) SetSilent(x, y, z float64) {
	v.x, v.y, v.z = x, y, z
}

func (v *Vec3) Copy(other *Vec3) {
	v.Set(other.x, other.y, other.z)
}

func (v *Vec3) Clone() *Vec3 {
	return NewVec3(v.x, v.y, v.z)
}

func (v *Vec3) Equals(other *Vec3) bool {
	return other != nil && v.x == other.x && v.y == other.y && v.z == other.z
}

func (v *Vec3) Add(o *Vec3) *Vec3 {
	return NewVec3(v.x+o.x, v.y+o.y, v.z+o.z)
}

func (v *Vec3) Sub(o *Vec3) *Vec3 {
	return NewVec3(v.x-o.x, v.y-o.y, v.z-o.z)
}

func (v *Vec3) Scale(s float64) *Vec3 {
	return NewVec3(v.x*s, v.y*s, v.z*s)
}

func (v *Vec3) Dot(o *Vec3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v *Vec3) Cross(o *Vec3) *Vec3 {
	return NewVec3(
		v.y*o.z-v.z*o.y,
		v.z*o.x-v.x*o.z,
		v.x*o.y-v.y*o.x,
	)
}

func (v *Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}
