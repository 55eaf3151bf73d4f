package geom

import (
	"github.com/vango-dev/geom/pkg/observe"
)

// Ray starts at origin and extends along direction.
type Ray struct {
	changes           observe.Source
	origin, direction *Vec2
}

// NewRay creates a ray over the given vectors. A nil origin defaults to
// (0, 0) and a nil direction to (1, 0).
func NewRay(origin, direction *Vec2) *Ray {
	if origin == nil {
		origin = NewVec2(0, 0)
	}
	if direction == nil {
		direction = NewVec2(1, 0)
	}
	r := &Ray{origin: origin, direction: direction}
	r.origin.Subscribe(r.changes.Notify)
	r.direction.Subscribe(r.changes.Notify)
	return r
}

func (r *Ray) Subscribe(fn observe.Callback) observe.Revoke {
	return r.changes.Subscribe(fn)
}

func (r *Ray) Origin() *Vec2    { return r.origin }
func (r *Ray) Direction() *Vec2 { return r.direction }

// At returns origin + direction*t.
func (r *Ray) At(t float64) *Vec2 {
	return r.origin.Add(r.direction.Scale(t))
}

// IntersectLine returns where the ray meets the infinite line through l.
// Parallel lines and hits behind the origin report false.
func (r *Ray) IntersectLine(l *Line) (*Vec2, bool) {
	e := l.Delta()
	denom := r.direction.Cross(e)
	if denom == 0 {
		return nil, false
	}
	t := l.start.Sub(r.origin).Cross(e) / denom
	if t < 0 {
		return nil, false
	}
	return r.At(t), true
}

func (r *Ray) Copy(other *Ray) {
	r.origin.Copy(other.origin)
	r.direction.Copy(other.direction)
}

func (r *Ray) Clone() *Ray {
	return NewRay(r.origin.Clone(), r.direction.Clone())
}

func (r *Ray) Equals(other *Ray) bool {
	return other != nil && r.origin.Equals(other.origin) && r.direction.Equals(other.direction)
}
