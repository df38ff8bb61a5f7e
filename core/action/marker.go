package action

import "reflect"

// Marker is the registration record standing in for a method attribute: Go
// cannot attach declarative metadata to methods, so inspected types mark
// their operations through Register and RegisterStatic, usually from an init
// function next to the type.
type Marker struct {
	// Method is the raw method name for instance operations, or the raw
	// operation name for static ones.
	Method string

	// Display overrides the derived nickname when non-empty.
	Display string

	Kind TargetKind

	// Defaults holds declared default parameter values, positionally. A nil
	// entry falls back to the type default.
	Defaults []any

	// ParamNames holds declared parameter names, positionally. Reflection
	// does not expose parameter names at runtime; missing entries render as
	// arg0, arg1, and so on.
	ParamNames []string

	// Func is the bound callable of a static operation.
	Func reflect.Value
}

// Option configures a Marker at registration time.
type Option func(*Marker)

// WithDisplayName sets the explicit caption for the operation's button.
func WithDisplayName(name string) Option {
	return func(m *Marker) {
		m.Display = name
	}
}

// WithDefaults declares default parameter values, positionally.
func WithDefaults(values ...any) Option {
	return func(m *Marker) {
		m.Defaults = values
	}
}

// WithParamNames declares parameter display names, positionally.
func WithParamNames(names ...string) Option {
	return func(m *Marker) {
		m.ParamNames = names
	}
}

// Registration happens from init functions and lookups from the host UI
// thread, so a plain map is enough.
var registry = make(map[reflect.Type][]Marker)

// Register marks the named method of sample's type as an inspector operation.
// sample is any value of the inspected type; pointer-receiver methods
// register through a pointer sample.
func Register(sample any, method string, opts ...Option) {
	m := Marker{
		Method: method,
		Kind:   TargetInstance,
	}
	for _, opt := range opts {
		opt(&m)
	}

	key := indirect(reflect.TypeOf(sample))
	registry[key] = append(registry[key], m)
}

// RegisterStatic attaches a receiver-less operation to the panel of sample's
// type. fn must be a func value; name is the raw operation name the nickname
// is derived from.
func RegisterStatic(sample any, name string, fn any, opts ...Option) {
	m := Marker{
		Method: name,
		Kind:   TargetStatic,
		Func:   reflect.ValueOf(fn),
	}
	for _, opt := range opts {
		opt(&m)
	}

	key := indirect(reflect.TypeOf(sample))
	registry[key] = append(registry[key], m)
}

// MarkersOf returns the markers registered for t, in registration order. The
// lookup ignores pointerness, so a *T selection finds markers registered with
// a T sample and vice versa.
func MarkersOf(t reflect.Type) []Marker {
	return registry[indirect(t)]
}

// Reset clears the registry. Tests only.
func Reset() {
	registry = make(map[reflect.Type][]Marker)
}

func indirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}
