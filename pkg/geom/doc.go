// Package geom provides observable geometry values and the shapes composed
// from them.
//
// # Value Types
//
// Scalar, Vec2, Vec3, Angle, Color, Complex and Mat3 own their fields. Every
// setter compares the incoming values with the stored ones and notifies
// subscribers exactly once if anything changed:
//
//	p := geom.NewVec2(1, 2)
//	p.Subscribe(func() { fmt.Println("moved") })
//	p.Set(1, 2) // no-op, nothing printed
//	p.Set(3, 4) // prints "moved" once
//
// SetSilent variants store without notifying. Clone returns an independent
// value with no subscribers; Copy assigns through the notifying setter.
//
// # Composites
//
// Box, Line, Ray, Triangle, Transform, GradientStop and Gradient hold the
// values passed to their constructors by reference. Mutating a constituent,
// even through a reference kept by the caller, notifies the composite:
//
//	min, max := geom.NewVec2(0, 0), geom.NewVec2(1, 1)
//	box := geom.NewBox(min, max)
//	box.Subscribe(func() { fmt.Println("box changed") })
//	max.SetX(2) // prints "box changed"
//
// Clone is the only way to obtain a composite that shares nothing with its
// source.
//
// # Formulas
//
// Functions that derive new geometry (intersections, sizes, interpolations)
// always return freshly constructed, unsubscribed values. Degenerate inputs
// such as parallel lines are reported with a false ok result.
package geom
