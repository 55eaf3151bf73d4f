package geom

import (
	"github.com/vango-dev/geom/pkg/observe"
)

// Line is a segment between two referenced points. Intersection treats it
// as the infinite line through both points.
type Line struct {
	changes    observe.Source
	start, end *Vec2
}

// NewLine creates a line over start and end; nil points default to the origin.
func NewLine(start, end *Vec2) *Line {
	if start == nil {
		start = NewVec2(0, 0)
	}
	if end == nil {
		end = NewVec2(0, 0)
	}
	l := &Line{start: start, end: end}
	l.start.Subscribe(l.changes.Notify)
	l.end.Subscribe(l.changes.Notify)
	return l
}

func (l *Line) Subscribe(fn observe.Callback) observe.Revoke {
	return l.changes.Subscribe(fn)
}

func (l *Line) Start() *Vec2 { return l.start }
func (l *Line) End() *Vec2   { return l.end }

// Delta returns end - start.
func (l *Line) Delta() *Vec2 {
	return l.end.Sub(l.start)
}

func (l *Line) Length() float64 {
	return l.start.DistanceTo(l.end)
}

// ClosestPoint returns the point of the segment nearest to p.
func (l *Line) ClosestPoint(p *Vec2) *Vec2 {
	d := l.Delta()
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return l.start.Clone()
	}
	t := p.Sub(l.start).Dot(d) / lenSq
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return l.start.Lerp(l.end, t)
}

func (l *Line) Copy(other *Line) {
	l.start.Copy(other.start)
	l.end.Copy(other.end)
}

func (l *Line) Clone() *Line {
	return NewLine(l.start.Clone(), l.end.Clone())
}

func (l *Line) Equals(other *Line) bool {
	return other != nil && l.start.Equals(other.start) && l.end.Equals(other.end)
}

// IntersectLines returns the intersection of the infinite lines through a
// and b. Parallel or degenerate lines report false.
func IntersectLines(a, b *Line) (*Vec2, bool) {
	d1 := a.Delta()
	d2 := b.Delta()
	denom := d1.Cross(d2)
	if denom == 0 {
		return nil, false
	}
	t := b.start.Sub(a.start).Cross(d2) / denom
	return a.start.Add(d1.Scale(t)), true
}
