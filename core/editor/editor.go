package editor

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/inspector/core/gui"
	"github.com/anoideaopen/inspector/core/introspect"
	"github.com/anoideaopen/inspector/core/stringsx"
	"github.com/anoideaopen/inspector/core/types"
)

// Engine edits values of arbitrary supported types through the host's widget
// surface. The zero Engine is not usable; construct one with NewEngine.
type Engine struct {
	intr introspect.Introspector

	// editing tracks composite types on the current recursion path, so a
	// self-referential composite terminates instead of default-constructing
	// itself forever. Single UI thread, no locking.
	editing map[reflect.Type]bool
}

// NewEngine creates an Engine. A nil introspector falls back to the stock
// reflect-based one.
func NewEngine(intr introspect.Introspector) *Engine {
	if intr == nil {
		intr = introspect.Reflect{}
	}

	return &Engine{
		intr:    intr,
		editing: make(map[reflect.Type]bool),
	}
}

// Edit draws an editable widget for a value of type t and returns the edited
// value. Unsupported types render a read-only annotation and come back
// unchanged, so Edit never falls through inconsistently with IsSupported.
func (e *Engine) Edit(r gui.Renderer, label string, t reflect.Type, value any) any {
	if !IsSupported(t) {
		r.Annotation(label, fmt.Sprintf("%s (unsupported)", typeName(t)))
		return value
	}

	switch Classify(t) {
	case KindPrimitive:
		return e.editPrimitive(r, label, t, value)
	case KindVector:
		return e.editVector(r, label, t, value)
	case KindEnum:
		return e.editEnum(r, label, t, value)
	case KindObject:
		return e.editObject(r, label, t, value)
	case KindSequence:
		return e.editSequence(r, label, t, value)
	default:
		return e.editComposite(r, label, t, value)
	}
}

func (e *Engine) editPrimitive(r gui.Renderer, label string, t reflect.Type, value any) any {
	current := coerce(t, value)
	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Bool:
		out.SetBool(r.Bool(label, current.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(r.Int(label, current.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out.SetUint(r.Uint(label, current.Uint()))
	case reflect.Float32, reflect.Float64:
		out.SetFloat(r.Float(label, current.Float()))
	default:
		out.SetString(r.Text(label, current.String()))
	}

	return out.Interface()
}

func (e *Engine) editVector(r gui.Renderer, label string, t reflect.Type, value any) any {
	switch v := coerce(t, value).Interface().(type) {
	case types.Vec2:
		return r.Vec2(label, v)
	case types.Vec3:
		return r.Vec3(label, v)
	case types.Vec4:
		return r.Vec4(label, v)
	case types.Color:
		return r.Color(label, v)
	default:
		return r.Rect(label, v.(types.Rect))
	}
}

func (e *Engine) editEnum(r gui.Renderer, label string, t reflect.Type, value any) any {
	info, _ := types.EnumOf(t)
	current := coerce(t, value)

	var mask int64
	if isUintKind(t.Kind()) {
		mask = int64(current.Uint())
	} else {
		mask = current.Int()
	}

	if info.Flags {
		edited := r.Flags(label, info.Names(), info.Masks(), mask)
		return enumValue(t, edited)
	}

	index := info.IndexOf(mask)
	if index < 0 {
		// The current value is outside the registered set; keep it rather
		// than silently snapping to the first choice.
		r.Annotation(label, fmt.Sprintf("unknown value %d", mask))
		return value
	}

	edited := r.Enum(label, info.Names(), index)
	if edited < 0 || edited >= len(info.Values) {
		return value
	}

	return enumValue(t, info.Values[edited].Value)
}

func (e *Engine) editObject(r gui.Renderer, label string, t reflect.Type, value any) any {
	var current types.Object
	if value != nil {
		current, _ = value.(types.Object)
	}

	edited := r.Object(label, t, normalizeRef(current))
	if edited == nil {
		return nil
	}

	// The picker may hand back any reference; keep only compatible ones.
	if !reflect.TypeOf(edited).AssignableTo(t) {
		return value
	}

	return edited
}

// normalizeRef collapses typed-nil references to a plain nil for the picker.
func normalizeRef(v types.Object) types.Object {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	return v
}

func (e *Engine) editSequence(r gui.Renderer, label string, t reflect.Type, value any) any {
	current := coerce(t, value)
	elemType := t.Elem()
	length := current.Len()

	var out reflect.Value
	if t.Kind() == reflect.Array {
		// Arrays have a fixed shape; the length renders read-only and only
		// the elements are editable.
		r.Annotation(label, fmt.Sprintf("size %d", length))
		out = reflect.New(t).Elem()
		out.Set(current)
	} else {
		newLen := int(r.Int(label+" Size", int64(length)))
		if newLen < 0 {
			newLen = 0
		}

		// Growing appends zero-valued elements (nil for reference-semantic
		// element types); shrinking truncates from the end. The surviving
		// prefix keeps the original element values.
		out = reflect.MakeSlice(t, newLen, newLen)
		reflect.Copy(out, current)
	}

	gui.Indented(r, func() {
		for i := 0; i < out.Len(); i++ {
			elemLabel := fmt.Sprintf("Element %d", i)
			edited := e.Edit(r, elemLabel, elemType, out.Index(i).Interface())
			setValue(out.Index(i), elemType, edited)
		}
	})

	return out.Interface()
}

func (e *Engine) editComposite(r gui.Renderer, label string, t reflect.Type, value any) any {
	if e.editing[t] {
		r.Annotation(label, fmt.Sprintf("%s (recursive)", typeName(t)))
		return value
	}
	e.editing[t] = true
	defer delete(e.editing, t)

	isPointer := t.Kind() == reflect.Pointer

	if value == nil || (isPointer && reflect.ValueOf(value).IsNil()) {
		constructed, err := e.intr.DefaultConstruct(t)
		if err != nil {
			r.Warning(fmt.Sprintf("%s: %v", label, err))
			return value
		}
		value = constructed
	}

	// Value composites are edited on an addressable copy; pointer composites
	// are edited in place, preserving the instance's identity.
	var work reflect.Value
	if isPointer {
		work = reflect.ValueOf(value).Elem()
	} else {
		work = reflect.New(t).Elem()
		work.Set(coerce(t, value))
	}

	structType := work.Type()
	gui.Indented(r, func() {
		for i := 0; i < structType.NumField(); i++ {
			field := structType.Field(i)
			fieldLabel := stringsx.Nickname(field.Name)

			if !eligibleField(field) || !IsSupported(field.Type) {
				r.Annotation(fieldLabel, fmt.Sprintf("%s (read-only)", typeName(field.Type)))
				continue
			}

			current := work.Field(i).Interface()
			edited := e.Edit(r, fieldLabel, field.Type, current)
			if !reflect.DeepEqual(edited, current) {
				setValue(work.Field(i), field.Type, edited)
			}
		}
	})

	if isPointer {
		return value
	}

	return work.Interface()
}

func setValue(dst reflect.Value, t reflect.Type, value any) {
	if value == nil {
		dst.Set(reflect.Zero(t))
		return
	}

	dst.Set(coerce(t, value))
}

// coerce produces a reflect.Value of exactly type t from value, converting
// named types and substituting the zero value for nil or incompatible input.
func coerce(t reflect.Type, value any) reflect.Value {
	if value == nil {
		return reflect.Zero(t)
	}

	v := reflect.ValueOf(value)
	switch {
	case v.Type() == t:
		return v
	case v.Type().AssignableTo(t):
		out := reflect.New(t).Elem()
		out.Set(v)
		return out
	case v.Type().ConvertibleTo(t):
		return v.Convert(t)
	default:
		return reflect.Zero(t)
	}
}

func enumValue(t reflect.Type, v int64) any {
	out := reflect.New(t).Elem()
	if isUintKind(t.Kind()) {
		out.SetUint(uint64(v))
	} else {
		out.SetInt(v)
	}

	return out.Interface()
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}

	return false
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
