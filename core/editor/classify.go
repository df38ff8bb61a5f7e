package editor

import (
	"reflect"

	"github.com/anoideaopen/inspector/core/types"
)

// Kind is the closed classification every type maps onto. Classification is
// total and deterministic: exactly one Kind per type.
type Kind int

const (
	KindPrimitive Kind = iota
	KindVector
	KindEnum
	KindObject
	KindSequence
	KindComposite
	KindUnsupported
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindVector:
		return "VectorOrStruct"
	case KindEnum:
		return "Enum"
	case KindObject:
		return "ObjectReference"
	case KindSequence:
		return "Sequence"
	case KindComposite:
		return "PlainComposite"
	default:
		return "Unsupported"
	}
}

var objectType = reflect.TypeOf((*types.Object)(nil)).Elem()

// Classify maps t onto its editor Kind. Containers are classified without
// looking at their contents; IsSupported applies the recursive rule.
func Classify(t reflect.Type) Kind {
	if t == nil {
		return KindUnsupported
	}

	// Registered enums are named integer types and must win over the plain
	// integer check.
	if _, ok := types.EnumOf(t); ok {
		return KindEnum
	}

	if types.IsVector(t) {
		return KindVector
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return KindPrimitive
	}

	if t.Implements(objectType) {
		return KindObject
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Struct:
		return KindComposite
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return KindComposite
		}
	}

	return KindUnsupported
}

// IsSupported reports whether the engine can edit values of t. A sequence is
// supported only if its element type is; a plain composite only if every
// eligible field type is. Self-referential composites terminate: a type
// already on the recursion path counts as supported at its point of reuse.
func IsSupported(t reflect.Type) bool {
	return isSupported(t, make(map[reflect.Type]bool))
}

func isSupported(t reflect.Type, visiting map[reflect.Type]bool) bool {
	switch Classify(t) {
	case KindPrimitive, KindVector, KindEnum, KindObject:
		return true
	case KindSequence:
		return isSupported(t.Elem(), visiting)
	case KindComposite:
		if visiting[t] {
			return true
		}
		visiting[t] = true
		defer delete(visiting, t)

		structType := t
		if structType.Kind() == reflect.Pointer {
			structType = structType.Elem()
		}
		for i := 0; i < structType.NumField(); i++ {
			field := structType.Field(i)
			if !eligibleField(field) {
				continue
			}
			if !isSupported(field.Type, visiting) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// eligibleField reports whether a composite field takes part in editing:
// exported and not opted out with an `edit:"-"` tag. Unexported fields cannot
// be written through reflection and render read-only.
func eligibleField(f reflect.StructField) bool {
	if f.PkgPath != "" {
		return false
	}

	return f.Tag.Get("edit") != "-"
}
