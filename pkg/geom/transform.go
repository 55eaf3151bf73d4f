package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vango-dev/geom/pkg/observe"
)

// Transform composes translation, rotation and scale into a matrix.
// The parameters are held by reference; changing any of them notifies.
type Transform struct {
	changes     observe.Source
	translation *Vec2
	rotation    *Angle
	scale       *Vec2
}

// NewTransform creates a transform. Nil parameters default to no
// translation, no rotation and unit scale.
func NewTransform(translation *Vec2, rotation *Angle, scale *Vec2) *Transform {
	if translation == nil {
		translation = NewVec2(0, 0)
	}
	if rotation == nil {
		rotation = NewAngle(0)
	}
	if scale == nil {
		scale = NewVec2(1, 1)
	}
	t := &Transform{translation: translation, rotation: rotation, scale: scale}
	t.translation.Subscribe(t.changes.Notify)
	t.rotation.Subscribe(t.changes.Notify)
	t.scale.Subscribe(t.changes.Notify)
	return t
}

func (t *Transform) Subscribe(fn observe.Callback) observe.Revoke {
	return t.changes.Subscribe(fn)
}

func (t *Transform) Translation() *Vec2 { return t.translation }
func (t *Transform) Rotation() *Angle   { return t.rotation }
func (t *Transform) Scale() *Vec2       { return t.scale }

// Matrix returns translate * rotate * scale as a new matrix.
func (t *Transform) Matrix() *Mat3 {
	m := mgl64.Translate2D(t.translation.x, t.translation.y).
		Mul3(mgl64.HomogRotate2D(t.rotation.radians)).
		Mul3(mgl64.Scale2D(t.scale.x, t.scale.y))
	return fromGL(m)
}

// Apply maps p through the current matrix.
func (t *Transform) Apply(p *Vec2) *Vec2 {
	return t.Matrix().TransformPoint(p)
}

func (t *Transform) Copy(other *Transform) {
	t.translation.Copy(other.translation)
	t.rotation.Copy(other.rotation)
	t.scale.Copy(other.scale)
}

func (t *Transform) Clone() *Transform {
	return NewTransform(t.translation.Clone(), t.rotation.Clone(), t.scale.Clone())
}

func (t *Transform) Equals(other *Transform) bool {
	return other != nil &&
		t.translation.Equals(other.translation) &&
		t.rotation.Equals(other.rotation) &&
		t.scale.Equals(other.scale)
}
