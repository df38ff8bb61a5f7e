package introspect

import "reflect"

// DeclaredDirectly reports whether the named method belongs to t itself
// rather than being promoted from an embedded type. A method that exists on
// an embedded type under the same name counts as inherited, even when the
// outer type shadows it.
func DeclaredDirectly(t reflect.Type, method string) bool {
	if t == nil {
		return false
	}

	if _, ok := t.MethodByName(method); !ok {
		return false
	}

	structType := t
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return true
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.Anonymous {
			continue
		}

		if _, ok := field.Type.MethodByName(method); ok {
			return false
		}
		if field.Type.Kind() != reflect.Pointer {
			if _, ok := reflect.PointerTo(field.Type).MethodByName(method); ok {
				return false
			}
		}
	}

	return true
}
