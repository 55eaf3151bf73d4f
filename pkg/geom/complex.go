package geom

import (
	"math/cmplx"

	"github.com/vango-dev/geom/pkg/observe"
)

// Complex is an observable complex number.
type Complex struct {
	changes observe.Source
	re, im  float64
}

// NewComplex returns re + im·i.
func NewComplex(re, im float64) *Complex {
	return &Complex{re: re, im: im}
}

// Subscribe registers fn to run after every change.
func (c *Complex) Subscribe(fn observe.Callback) observe.Revoke {
	return c.changes.Subscribe(fn)
}

// Re and Im return the real and imaginary parts.
func (c *Complex) Re() float64 { return c.re }
func (c *Complex) Im() float64 { return c.im }

// Set updates both parts and notifies once if either changed.
func (c *Complex) Set(re, im float64) {
	if c.re == re && c.im == im {
		return
	}
	c.re, c.im = re, im
	c.changes.Notify()
}

// SetSilent stores both parts without notifying.
func (c *Complex) SetSilent(re, im float64) {
	c.re, c.im = re, im
}

// Copy sets both parts from other, notifying if either changed.
func (c *Complex) Copy(other *Complex) {
	c.Set(other.re, other.im)
}

// Clone returns an equal number with no subscribers.
func (c *Complex) Clone() *Complex {
	return NewComplex(c.re, c.im)
}

// Equals compares both parts exactly.
func (c *Complex) Equals(other *Complex) bool {
	return other != nil && c.re == other.re && c.im == other.im
}

// CloseTo reports whether |c - other| <= delta.
// A delta <= 0 uses Epsilon.
func (c *Complex) CloseTo(other *Complex, delta float64) bool {
	if delta <= 0 {
		delta = Epsilon
	}
	return cmplx.Abs(c.value()-other.value()) <= delta
}

func (c *Complex) value() complex128 {
	return complex(c.re, c.im)
}

func fromComplex(z complex128) *Complex {
	return NewComplex(real(z), imag(z))
}

// Add returns c + o as a new value.
func (c *Complex) Add(o *Complex) *Complex {
	return fromComplex(c.value() + o.value())
}

// Mul returns c · o as a new value.
func (c *Complex) Mul(o *Complex) *Complex {
	return fromComplex(c.value() * o.value())
}

// Conj returns the complex conjugate as a new value.
func (c *Complex) Conj() *Complex {
	return NewComplex(c.re, -c.im)
}

// Abs returns the modulus.
func (c *Complex) Abs() float64 {
	return cmplx.Abs(c.value())
}

// Arg returns the phase in radians.
func (c *Complex) Arg() float64 {
	return cmplx.Phase(c.value())
}
