package scene

import (
	"github.com/vango-dev/geom/pkg/geom"
)

// onSegment is how far an intersection may sit from a segment and still
// count as lying on it.
const onSegment = 1e-9

// Report summarizes a scene's current geometry.
type Report struct {
	Name          string             `json:"name" yaml:"name"`
	Points        int                `json:"points" yaml:"points"`
	Bounds        *Bounds            `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	PathLength    float64            `json:"pathLength" yaml:"pathLength"`
	Perimeter     float64            `json:"perimeter" yaml:"perimeter"`
	Lines         []LineReport       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Intersections []Intersection     `json:"intersections,omitempty" yaml:"intersections,omitempty"`
	RayHits       []RayHit           `json:"rayHits,omitempty" yaml:"rayHits,omitempty"`
	Gradient      []Sample           `json:"gradient,omitempty" yaml:"gradient,omitempty"`
	Notifications map[string]float64 `json:"notifications" yaml:"notifications"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func pointOf(v *geom.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Bounds is omitted from a Report when the scene has no points.
type Bounds struct {
	Min    Point `json:"min" yaml:"min"`
	Max    Point `json:"max" yaml:"max"`
	Center Point `json:"center" yaml:"center"`
}

type LineReport struct {
	Name   string  `json:"name" yaml:"name"`
	Length float64 `json:"length" yaml:"length"`
}

// Intersection is where two lines, extended without end, cross.
// OnSegments reports whether the point lies on both segments.
type Intersection struct {
	A          string `json:"a" yaml:"a"`
	B          string `json:"b" yaml:"b"`
	At         Point  `json:"at" yaml:"at"`
	OnSegments bool   `json:"onSegments" yaml:"onSegments"`
}

type RayHit struct {
	Line      string  `json:"line" yaml:"line"`
	At        Point   `json:"at" yaml:"at"`
	Distance  float64 `json:"distance" yaml:"distance"`
	OnSegment bool    `json:"onSegment" yaml:"onSegment"`
}

// Sample is the gradient color at position T.
type Sample struct {
	T     float64 `json:"t" yaml:"t"`
	Color string  `json:"color" yaml:"color"`
}

// Report measures the scene as it is now.
func (s *Scene) Report() *Report {
	r := &Report{
		Name:       s.name,
		Points:     s.points.Len(),
		PathLength: s.points.PathLength(),
		Perimeter:  s.points.Perimeter(),
		Notifications: map[string]float64{
			SourcePoints:   s.Notifications(SourcePoints),
			SourceLines:    s.Notifications(SourceLines),
			SourceGradient: s.Notifications(SourceGradient),
		},
	}
	if s.ray != nil {
		r.Notifications[SourceRay] = s.Notifications(SourceRay)
	}

	if box := s.points.BoundingBox(); !box.IsEmpty() {
		r.Bounds = &Bounds{
			Min:    pointOf(box.Min()),
			Max:    pointOf(box.Max()),
			Center: pointOf(box.Center()),
		}
	}

	for i, a := range s.lines {
		r.Lines = append(r.Lines, LineReport{Name: a.Name(), Length: a.Length()})
		for _, b := range s.lines[i+1:] {
			at, ok := geom.IntersectLines(a.Line, b.Line)
			if !ok {
				continue
			}
			r.Intersections = append(r.Intersections, Intersection{
				A:          a.Name(),
				B:          b.Name(),
				At:         pointOf(at),
				OnSegments: touches(a.Line, at) && touches(b.Line, at),
			})
		}
	}

	if s.ray != nil {
		for _, l := range s.lines {
			at, ok := s.ray.IntersectLine(l.Line)
			if !ok {
				continue
			}
			r.RayHits = append(r.RayHits, RayHit{
				Line:      l.Name(),
				At:        pointOf(at),
				Distance:  s.ray.Origin().DistanceTo(at),
				OnSegment: touches(l.Line, at),
			})
		}
	}

	for _, t := range s.samples {
		r.Gradient = append(r.Gradient, Sample{T: t, Color: s.gradient.ColorAt(t).Hex()})
	}
	return r
}

func touches(l *geom.Line, p *geom.Vec2) bool {
	return l.ClosestPoint(p).DistanceTo(p) <= onSegment
}
