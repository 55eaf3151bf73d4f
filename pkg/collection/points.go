package collection

import (
	"github.com/vango-dev/geom/pkg/geom"
)

// Points is an Array of vectors with path and polygon queries.
// All queries are computed on demand from the current elements.
type Points struct {
	*Array[*geom.Vec2]
}

// NewPoints creates a point list holding pts by reference.
func NewPoints(pts ...*geom.Vec2) *Points {
	return &Points{Array: New(pts...)}
}

// AddPoint appends a new vector at (x, y) and returns it.
func (p *Points) AddPoint(x, y float64) *geom.Vec2 {
	v := geom.NewVec2(x, y)
	p.Push(v)
	return v
}

// BoundingBox returns a new box enclosing every point. An empty list yields
// an empty box.
func (p *Points) BoundingBox() *geom.Box {
	box := geom.NewBox(nil, nil)
	p.Each(func(_ int, v *geom.Vec2) {
		box.ExpandByPoint(v)
	})
	return box
}

// PathLength returns the summed distance between consecutive points.
func (p *Points) PathLength() float64 {
	total := 0.0
	p.EachPair(func(_ int, a, b *geom.Vec2) {
		total += a.DistanceTo(b)
	})
	return total
}

// Perimeter is PathLength plus the closing edge from last to first.
func (p *Points) Perimeter() float64 {
	n := p.Len()
	if n < 2 {
		return 0
	}
	return p.PathLength() + p.elems[n-1].DistanceTo(p.elems[0])
}

// Edges returns the closed polygon edges as new lines over cloned points.
func (p *Points) Edges() []*geom.Line {
	n := p.Len()
	if n < 2 {
		return nil
	}
	edges := make([]*geom.Line, 0, n)
	for i := 0; i < n; i++ {
		a, b := p.elems[i], p.elems[(i+1)%n]
		edges = append(edges, geom.NewLine(a.Clone(), b.Clone()))
	}
	return edges
}

// ContainsPoint applies the even-odd rule to the closed polygon.
func (p *Points) ContainsPoint(q *geom.Vec2) bool {
	n := p.Len()
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.elems[i], p.elems[j]
		if (a.Y() > q.Y()) != (b.Y() > q.Y()) {
			x := (b.X()-a.X())*(q.Y()-a.Y())/(b.Y()-a.Y()) + a.X()
			if q.X() < x {
				inside = !inside
			}
		}
	}
	return inside
}
