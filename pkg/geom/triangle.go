package geom

import (
	"math"

	"github.com/vango-dev/geom/pkg/observe"
)

// Triangle is built from three referenced vertices.
type Triangle struct {
	changes observe.Source
	a, b, c *Vec2
}

// NewTriangle creates a triangle; nil vertices default to the origin.
func NewTriangle(a, b, c *Vec2) *Triangle {
	t := &Triangle{a: orOrigin(a), b: orOrigin(b), c: orOrigin(c)}
	for _, v := range []*Vec2{t.a, t.b, t.c} {
		v.Subscribe(t.changes.Notify)
	}
	return t
}

func orOrigin(v *Vec2) *Vec2 {
	if v == nil {
		return NewVec2(0, 0)
	}
	return v
}

func (t *Triangle) Subscribe(fn observe.Callback) observe.Revoke {
	return t.changes.Subscribe(fn)
}

func (t *Triangle) A() *Vec2 { return t.a }
func (t *Triangle) B() *Vec2 { return t.b }
func (t *Triangle) C() *Vec2 { return t.c }

// Area returns the unsigned area.
func (t *Triangle) Area() float64 {
	return math.Abs(t.b.Sub(t.a).Cross(t.c.Sub(t.a))) / 2
}

// Barycentric returns the weights of p relative to a, b and c.
// Collinear vertices report ok == false.
func (t *Triangle) Barycentric(p *Vec2) (u, v, w float64, ok bool) {
	v0 := t.b.Sub(t.a)
	v1 := t.c.Sub(t.a)
	v2 := p.Sub(t.a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0, 0, false
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w, true
}

// ContainsPoint reports whether p lies inside or on an edge.
func (t *Triangle) ContainsPoint(p *Vec2) bool {
	u, v, w, ok := t.Barycentric(p)
	return ok && u >= 0 && v >= 0 && w >= 0
}

func (t *Triangle) Copy(other *Triangle) {
	t.a.Copy(other.a)
	t.b.Copy(other.b)
	t.c.Copy(other.c)
}

func (t *Triangle) Clone() *Triangle {
	return NewTriangle(t.a.Clone(), t.b.Clone(), t.c.Clone())
}

func (t *Triangle) Equals(other *Triangle) bool {
	return other != nil && t.a.Equals(other.a) && t.b.Equals(other.b) && t.c.Equals(other.c)
}
