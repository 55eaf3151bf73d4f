package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vango-dev/geom/pkg/observe"
)

// Angle is an observable angle stored in radians.
type Angle struct {
	changes observe.Source
	radians float64
}

// NewAngle creates an angle of rad radians.
func NewAngle(rad float64) *Angle {
	return &Angle{radians: rad}
}

// AngleFromDegrees creates an angle of deg degrees.
func AngleFromDegrees(deg float64) *Angle {
	return NewAngle(mgl64.DegToRad(deg))
}

// Subscribe registers fn to run after every change.
func (a *Angle) Subscribe(fn observe.Callback) observe.Revoke {
	return a.changes.Subscribe(fn)
}

func (a *Angle) Radians() float64 { return a.radians }

func (a *Angle) Degrees() float64 { return mgl64.RadToDeg(a.radians) }

// SetRadians stores rad and notifies on change.
func (a *Angle) SetRadians(rad float64) {
	if a.radians == rad {
		return
	}
	a.radians = rad
	a.changes.Notify()
}

// SetDegrees converts deg to radians before storing.
func (a *Angle) SetDegrees(deg float64) {
	a.SetRadians(mgl64.DegToRad(deg))
}

func (a *Angle) SetSilent(rad float64) {
	a.radians = rad
}

func (a *Angle) Copy(other *Angle) {
	a.SetRadians(other.radians)
}

func (a *Angle) Clone() *Angle {
	return NewAngle(a.radians)
}

func (a *Angle) Equals(other *Angle) bool {
	return other != nil && a.radians == other.radians
}
