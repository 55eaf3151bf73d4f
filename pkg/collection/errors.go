package collection

import "errors"

// ErrNameNotUnique is returned when a name is already bound.
var ErrNameNotUnique = errors.New("geom: name not unique")

// ErrIndexOutOfBounds is returned for an index outside the valid range of
// the operation.
var ErrIndexOutOfBounds = errors.New("geom: index out of bounds")

// ErrNoSuchName is returned when looking up or removing an unbound name.
var ErrNoSuchName = errors.New("geom: no such name")
