package action

import "reflect"

// TargetKind tells whether an operation needs a receiver from the current
// selection.
type TargetKind int

const (
	// TargetInstance operations are invoked once per selected object.
	TargetInstance TargetKind = iota
	// TargetStatic operations are invoked exactly once with no receiver.
	TargetStatic
)

// Param is one operation parameter together with its live edited value.
type Param struct {
	Name  string
	Type  reflect.Type
	Value any
}

// Descriptor is a catalog entry for one marked operation. Parameter values
// mutate in place while the user edits the form; the whole descriptor is
// discarded and rebuilt when the inspected selection changes, so values are
// never shared across operations or selections.
type Descriptor struct {
	DisplayName    string
	MethodName     string
	Declaring      reflect.Type
	Kind           TargetKind
	Params         []Param
	FullySupported bool

	// Func is the receiver-less callable backing a static operation; invalid
	// for instance operations.
	Func reflect.Value
}

// Args captures the current parameter values in declaration order.
func (d *Descriptor) Args() []any {
	args := make([]any, len(d.Params))
	for i, p := range d.Params {
		args[i] = p.Value
	}

	return args
}
