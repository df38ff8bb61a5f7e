package types

import "reflect"

// Object identifies a host-managed object that a reference-picker widget can
// point at. Scene-held and asset-held references both satisfy it.
type Object interface {
	// ObjectID returns the host's stable identifier for the object.
	ObjectID() string
}

// Identity returns a stable identity string for an inspected value: the
// ObjectID when the value is a host Object, the type name otherwise.
func Identity(v any) string {
	if o, ok := v.(Object); ok {
		return o.ObjectID()
	}

	if v == nil {
		return ""
	}

	return reflect.TypeOf(v).String()
}
