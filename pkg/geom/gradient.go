package geom

import (
	"cmp"
	"math"
	"slices"

	"github.com/vango-dev/geom/pkg/observe"
)

// GradientStop pairs a position in [0, 1] with a referenced color.
type GradientStop struct {
	changes  observe.Source
	position *Scalar
	color    *Color
	revokes  []observe.Revoke
}

// NewGradientStop creates a stop at position (clamped to [0, 1]) holding
// color by reference. A nil color defaults to opaque black.
func NewGradientStop(position float64, color *Color) *GradientStop {
	if color == nil {
		color = NewColor(0, 0, 0)
	}
	s := &GradientStop{
		position: NewScalar(clamp01(position)),
		color:    color,
	}
	s.revokes = []observe.Revoke{
		s.position.Subscribe(s.changes.Notify),
		s.color.Subscribe(s.changes.Notify),
	}
	return s
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Subscribe registers fn to run after the position or color changes.
func (s *GradientStop) Subscribe(fn observe.Callback) observe.Revoke {
	return s.changes.Subscribe(fn)
}

// Position returns the stop position in [0, 1].
func (s *GradientStop) Position() float64 { return s.position.Value() }

// Color returns the referenced color, or nil once the stop has been
// released by Gradient.Clear.
func (s *GradientStop) Color() *Color { return s.color }

// SetPosition clamps p to [0, 1] and stores it.
func (s *GradientStop) SetPosition(p float64) {
	s.position.Set(clamp01(p))
}

// Copy sets the position and the color channels from other. The stop keeps
// its own Color instance.
func (s *GradientStop) Copy(other *GradientStop) {
	s.SetPosition(other.Position())
	if s.color != nil && other.color != nil {
		s.color.Copy(other.color)
	}
}

// Clone returns a stop with a cloned color and no subscribers.
func (s *GradientStop) Clone() *GradientStop {
	var c *Color
	if s.color != nil {
		c = s.color.Clone()
	}
	return NewGradientStop(s.Position(), c)
}

// Equals compares position and color.
func (s *GradientStop) Equals(other *GradientStop) bool {
	if other == nil || !s.position.Equals(other.position) {
		return false
	}
	if s.color == nil || other.color == nil {
		return s.color == other.color
	}
	return s.color.Equals(other.color)
}

// release drops the stop's link to its color and all of its subscribers.
func (s *GradientStop) release() {
	for _, revoke := range s.revokes {
		revoke()
	}
	s.revokes = nil
	s.changes.Clear()
	s.color = nil
}

// gradientEntry is a stop plus the gradient's own subscriptions on it.
type gradientEntry struct {
	stop    *GradientStop
	revokes []observe.Revoke
}

// Gradient is an ordered list of color stops, sorted by position.
type Gradient struct {
	changes observe.Source
	entries []*gradientEntry
}

// NewGradient returns a gradient with no stops.
func NewGradient() *Gradient {
	return &Gradient{}
}

// Subscribe registers fn to run after stops are added or cleared, or any
// stop position or color changes.
func (g *Gradient) Subscribe(fn observe.Callback) observe.Revoke {
	return g.changes.Subscribe(fn)
}

// Len returns the number of stops.
func (g *Gradient) Len() int {
	return len(g.entries)
}

// Stops returns the stops in position order. The slice is a copy.
func (g *Gradient) Stops() []*GradientStop {
	out := make([]*GradientStop, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.stop
	}
	return out
}

// AddStop inserts a stop at position holding color by reference.
// Stops sharing a position keep their insertion order.
func (g *Gradient) AddStop(position float64, color *Color) *GradientStop {
	stop := NewGradientStop(position, color)
	entry := &gradientEntry{stop: stop}
	entry.revokes = []observe.Revoke{
		stop.position.Subscribe(func() {
			g.sort()
			g.changes.Notify()
		}),
		stop.color.Subscribe(g.changes.Notify),
	}

	g.entries = append(g.entries, entry)
	g.sort()
	g.changes.Notify()
	return stop
}

func (g *Gradient) sort() {
	slices.SortStableFunc(g.entries, func(a, b *gradientEntry) int {
		return cmp.Compare(a.stop.Position(), b.stop.Position())
	})
}

// ColorAt samples the gradient at t.
//
// Below the first position it returns a copy of the first stop's color; at
// or above the last position a copy of the last stop's color. Between stops
// it interpolates linearly. When several stops share a position, the last of
// them owns queries exactly at that position. An empty gradient yields
// opaque black.
func (g *Gradient) ColorAt(t float64) *Color {
	n := len(g.entries)
	if n == 0 {
		return NewColor(0, 0, 0)
	}

	i := 0
	for i < n && !(t < g.entries[i].stop.Position()) {
		i++
	}

	switch i {
	case 0:
		return g.entries[0].stop.color.Clone()
	case n:
		return g.entries[n-1].stop.color.Clone()
	}

	lo, hi := g.entries[i-1].stop, g.entries[i].stop
	f := (t - lo.Position()) / (hi.Position() - lo.Position())
	return LerpColor(lo.color, hi.color, f)
}

// Clear removes every stop. Each removed stop is detached from its color, so
// later changes to that color no longer reach the gradient.
func (g *Gradient) Clear() {
	if len(g.entries) == 0 {
		return
	}
	for _, e := range g.entries {
		for _, revoke := range e.revokes {
			revoke()
		}
		e.stop.release()
	}
	g.entries = nil
	g.changes.Notify()
}

// Copy replaces this gradient's stops with clones of other's stops.
func (g *Gradient) Copy(other *Gradient) {
	if other == g {
		return
	}
	stops := other.Stops()
	g.Clear()
	for _, s := range stops {
		g.AddStop(s.Position(), s.color.Clone())
	}
}

// Clone returns an independent gradient over cloned stops.
func (g *Gradient) Clone() *Gradient {
	out := NewGradient()
	for _, e := range g.entries {
		out.AddStop(e.stop.Position(), e.stop.color.Clone())
	}
	return out
}

// Equals compares the stops pairwise, in order.
func (g *Gradient) Equals(other *Gradient) bool {
	if other == nil || len(g.entries) != len(other.entries) {
		return false
	}
	for i := range g.entries {
		if !g.entries[i].stop.Equals(other.entries[i].stop) {
			return false
		}
	}
	return true
}
