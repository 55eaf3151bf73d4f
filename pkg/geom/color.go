package geom

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vango-dev/geom/pkg/observe"
)

// Color is an observable RGBA color.
// Channels are integers in [0, 255]; opacity is in [0, 1].
type Color struct {
	changes observe.Source
	r, g, b int
	a       float64
}

// NewColor creates an opaque color. Channels are rounded and clamped.
func NewColor(r, g, b float64) *Color {
	return NewColorRGBA(r, g, b, 1)
}

// NewColorRGBA creates a color with explicit opacity.
func NewColorRGBA(r, g, b, a float64) *Color {
	c := &Color{}
	c.SetSilent(r, g, b, a)
	return c
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (*Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("geom: parse color %q: %w", s, err)
	}
	return NewColor(cf.R*255, cf.G*255, cf.B*255), nil
}

// channel rounds to the nearest integer and clamps to [0, 255].
func channel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

// opacity clamps to [0, 1] without rounding.
func opacity(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Subscribe registers fn to run after every change.
func (c *Color) Subscribe(fn observe.Callback) observe.Revoke {
	return c.changes.Subscribe(fn)
}

// R, G and B return the channels in [0, 255]; Opacity is in [0, 1].
func (c *Color) R() int           { return c.r }
func (c *Color) G() int           { return c.g }
func (c *Color) B() int           { return c.b }
func (c *Color) Opacity() float64 { return c.a }

// SetRGBA normalizes all four components and notifies once if any changed.
func (c *Color) SetRGBA(r, g, b, a float64) {
	nr, ng, nb, na := channel(r), channel(g), channel(b), opacity(a)
	if c.r == nr && c.g == ng && c.b == nb && c.a == na {
		return
	}
	c.r, c.g, c.b, c.a = nr, ng, nb, na
	c.changes.Notify()
}

// SetRGB keeps the current opacity.
func (c *Color) SetRGB(r, g, b float64) {
	c.SetRGBA(r, g, b, c.a)
}

// SetR, SetG and SetB change one channel and keep the others.
func (c *Color) SetR(r float64) { c.SetRGBA(r, float64(c.g), float64(c.b), c.a) }
func (c *Color) SetG(g float64) { c.SetRGBA(float64(c.r), g, float64(c.b), c.a) }
func (c *Color) SetB(b float64) { c.SetRGBA(float64(c.r), float64(c.g), b, c.a) }

// SetOpacity clamps a to [0, 1] and keeps the channels.
func (c *Color) SetOpacity(a float64) {
	c.SetRGBA(float64(c.r), float64(c.g), float64(c.b), a)
}

// SetSilent normalizes and stores without notifying.
func (c *Color) SetSilent(r, g, b, a float64) {
	c.r, c.g, c.b, c.a = channel(r), channel(g), channel(b), opacity(a)
}

// Copy sets all four components from other, notifying if any changed.
func (c *Color) Copy(other *Color) {
	c.SetRGBA(float64(other.r), float64(other.g), float64(other.b), other.a)
}

// Clone returns an equal color with no subscribers.
func (c *Color) Clone() *Color {
	return NewColorRGBA(float64(c.r), float64(c.g), float64(c.b), c.a)
}

// Equals compares channels and opacity exactly.
func (c *Color) Equals(other *Color) bool {
	return other != nil && c.r == other.r && c.g == other.g && c.b == other.b && c.a == other.a
}

// Hex formats the color channels as "#rrggbb". Opacity is not encoded.
func (c *Color) Hex() string {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}.Hex()
}

// String implements fmt.Stringer.
func (c *Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.r, c.g, c.b, c.a)
}

// LerpColor returns a new color linearly interpolated from a to b.
// Channels are rounded, opacity is not.
func LerpColor(a, b *Color, t float64) *Color {
	lerp := func(x, y float64) float64 { return x + (y-x)*t }
	return NewColorRGBA(
		lerp(float64(a.r), float64(b.r)),
		lerp(float64(a.g), float64(b.g)),
		lerp(float64(a.b), float64(b.b)),
		lerp(a.a, b.a),
	)
}
