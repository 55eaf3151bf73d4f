package geom

import (
	"math"

	"github.com/vango-dev/geom/pkg/observe"
)

// Box is an axis-aligned rectangle spanned by two referenced vectors.
type Box struct {
	changes  observe.Source
	min, max *Vec2
}

// NewBox creates a box over min and max. The vectors are held by reference.
// A nil min defaults to (+Inf, +Inf) and a nil max to (-Inf, -Inf), so
// NewBox(nil, nil) is empty and grows with the first ExpandByPoint.
func NewBox(min, max *Vec2) *Box {
	if min == nil {
		min = NewVec2(math.Inf(1), math.Inf(1))
	}
	if max == nil {
		max = NewVec2(math.Inf(-1), math.Inf(-1))
	}
	b := &Box{min: min, max: max}
	b.min.Subscribe(b.changes.Notify)
	b.max.Subscribe(b.changes.Notify)
	return b
}

// Subscribe registers fn to run after any corner changes.
func (b *Box) Subscribe(fn observe.Callback) observe.Revoke {
	return b.changes.Subscribe(fn)
}

func (b *Box) Min() *Vec2 { return b.min }
func (b *Box) Max() *Vec2 { return b.max }

// IsEmpty reports whether max < min on either axis.
func (b *Box) IsEmpty() bool {
	return b.max.x < b.min.x || b.max.y < b.min.y
}

// IsArea reports whether the box has positive extent on both axes.
func (b *Box) IsArea() bool {
	return b.max.x > b.min.x && b.max.y > b.min.y
}

// Size returns max - min, or the zero vector for an empty box.
func (b *Box) Size() *Vec2 {
	if b.IsEmpty() {
		return NewVec2(0, 0)
	}
	return b.max.Sub(b.min)
}

// Center returns the midpoint, or the zero vector for an empty box.
func (b *Box) Center() *Vec2 {
	if b.IsEmpty() {
		return NewVec2(0, 0)
	}
	return b.min.Lerp(b.max, 0.5)
}

// ExpandByPoint grows the box to include p.
func (b *Box) ExpandByPoint(p *Vec2) {
	b.min.Set(math.Min(b.min.x, p.x), math.Min(b.min.y, p.y))
	b.max.Set(math.Max(b.max.x, p.x), math.Max(b.max.y, p.y))
}

// ExpandByBox grows the box to include o.
func (b *Box) ExpandByBox(o *Box) {
	b.min.Set(math.Min(b.min.x, o.min.x), math.Min(b.min.y, o.min.y))
	b.max.Set(math.Max(b.max.x, o.max.x), math.Max(b.max.y, o.max.y))
}

// ExpandByScalar moves every side outwards by s.
func (b *Box) ExpandByScalar(s float64) {
	b.min.Set(b.min.x-s, b.min.y-s)
	b.max.Set(b.max.x+s, b.max.y+s)
}

// ContainsPoint reports whether p lies inside or on the border.
func (b *Box) ContainsPoint(p *Vec2) bool {
	return p.x >= b.min.x && p.x <= b.max.x &&
		p.y >= b.min.y && p.y <= b.max.y
}

// ContainsBox reports whether o lies entirely inside or on the border.
func (b *Box) ContainsBox(o *Box) bool {
	return o.min.x >= b.min.x && o.max.x <= b.max.x &&
		o.min.y >= b.min.y && o.max.y <= b.max.y
}

// Copy assigns other's corners into this box's own corner vectors.
func (b *Box) Copy(other *Box) {
	b.min.Copy(other.min)
	b.max.Copy(other.max)
}

func (b *Box) Clone() *Box {
	return NewBox(b.min.Clone(), b.max.Clone())
}

func (b *Box) Equals(other *Box) bool {
	return other != nil && b.min.Equals(other.min) && b.max.Equals(other.max)
}
