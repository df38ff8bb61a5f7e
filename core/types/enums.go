package types

import (
	"fmt"
	"reflect"
)

// EnumValue is one named constant of a registered enum type.
type EnumValue struct {
	Name  string
	Value int64
}

// EnumInfo describes a registered enum type: its named values and whether it
// is edited as a multi-select bitmask.
type EnumInfo struct {
	Type   reflect.Type
	Flags  bool
	Values []EnumValue
}

// Names returns the value names in registration order.
func (e EnumInfo) Names() []string {
	names := make([]string, len(e.Values))
	for i, v := range e.Values {
		names[i] = v.Name
	}

	return names
}

// Masks returns the numeric values in registration order.
func (e EnumInfo) Masks() []int64 {
	masks := make([]int64, len(e.Values))
	for i, v := range e.Values {
		masks[i] = v.Value
	}

	return masks
}

// IndexOf returns the position of the value v among the registered values, or
// -1 when v is not one of them.
func (e EnumInfo) IndexOf(v int64) int {
	for i, ev := range e.Values {
		if ev.Value == v {
			return i
		}
	}

	return -1
}

// All registration happens from init functions and all lookups from the host
// UI thread, so a plain map is enough.
var enums = make(map[reflect.Type]EnumInfo)

// RegisterEnum registers a named integer type as a single-choice enum.
// sample is any value of the enum type.
func RegisterEnum(sample any, values ...EnumValue) {
	register(sample, false, values)
}

// RegisterFlags registers a named integer type as a bitmask enum whose editor
// is a multi-select.
func RegisterFlags(sample any, values ...EnumValue) {
	register(sample, true, values)
}

func register(sample any, flags bool, values []EnumValue) {
	t := reflect.TypeOf(sample)
	if t == nil {
		panic("types: enum registration with nil sample")
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		panic(fmt.Sprintf("types: enum registration for non-integer type %s", t))
	}

	enums[t] = EnumInfo{
		Type:   t,
		Flags:  flags,
		Values: values,
	}
}

// EnumOf returns the registration record for t, if any.
func EnumOf(t reflect.Type) (EnumInfo, bool) {
	info, ok := enums[t]
	return info, ok
}
