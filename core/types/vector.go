package types

import "reflect"

// Geometric value types with dedicated editor widgets. The set is closed: the
// classifier treats exactly these struct types as vectors, everything else
// falls through to the composite rules.

type Vec2 struct {
	X, Y float64
}

type Vec3 struct {
	X, Y, Z float64
}

type Vec4 struct {
	X, Y, Z, W float64
}

type Color struct {
	R, G, B, A float64
}

type Rect struct {
	X, Y, Width, Height float64
}

var vectorTypes = map[reflect.Type]struct{}{
	reflect.TypeOf(Vec2{}):  {},
	reflect.TypeOf(Vec3{}):  {},
	reflect.TypeOf(Vec4{}):  {},
	reflect.TypeOf(Color{}): {},
	reflect.TypeOf(Rect{}):  {},
}

// IsVector reports whether t is one of the built-in geometric value types.
func IsVector(t reflect.Type) bool {
	_, ok := vectorTypes[t]
	return ok
}
