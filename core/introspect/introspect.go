package introspect

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrMethodNotFound         = errors.New("method not found")
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
	ErrInvalidArgumentValue   = errors.New("invalid argument value")
	ErrNotConstructible       = errors.New("no default construction path")
	ErrNotAFunction           = errors.New("not a function")
	ErrInvocationPanic        = errors.New("panic during invocation")
)

// Introspector is the reflection capability consumed by the catalog and the
// dispatcher. The stock implementation is Reflect; hosts with generated
// metadata can substitute their own.
type Introspector interface {
	// Invoke calls the named method on receiver with positional arguments and
	// returns the method's results. A panic inside the method is recovered
	// and returned as an error.
	Invoke(receiver any, method string, args ...any) ([]any, error)

	// InvokeFunc calls a bound receiver-less function with positional
	// arguments.
	InvokeFunc(fn reflect.Value, args ...any) ([]any, error)

	// DefaultConstruct builds the default value of t, or reports that no
	// construction path exists.
	DefaultConstruct(t reflect.Type) (any, error)
}

// Reflect is the stock reflect-based Introspector.
type Reflect struct{}

// Invoke calls the named method on receiver with positional arguments.
func (Reflect) Invoke(receiver any, method string, args ...any) ([]any, error) {
	methodVal := reflect.ValueOf(receiver).MethodByName(method)
	if !methodVal.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}

	return call(methodVal, method, args)
}

// InvokeFunc calls a bound function value with positional arguments.
func (Reflect) InvokeFunc(fn reflect.Value, args ...any) ([]any, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	return call(fn, fn.Type().String(), args)
}

// DefaultConstruct builds the default value of t: a zero value for value
// kinds, a fresh instance for pointer-to-struct, an empty container for
// slices and maps. Interface, chan and func types have no construction path.
func (Reflect) DefaultConstruct(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotConstructible)
	}

	switch t.Kind() {
	case reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, t)
	case reflect.Pointer:
		if t.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s", ErrNotConstructible, t)
		}
		return reflect.New(t.Elem()).Interface(), nil
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface(), nil
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), nil
	default:
		return reflect.Zero(t).Interface(), nil
	}
}

func call(fn reflect.Value, name string, args []any) (out []any, err error) {
	fnType := fn.Type()
	if fnType.NumIn() != len(args) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: call %s",
			ErrIncorrectArgumentCount,
			len(args),
			fnType.NumIn(),
			name,
		)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(fnType.In(i))
			continue
		}

		argVal := reflect.ValueOf(arg)
		switch {
		case argVal.Type().AssignableTo(fnType.In(i)):
		case argVal.Type().ConvertibleTo(fnType.In(i)):
			argVal = argVal.Convert(fnType.In(i))
		default:
			return nil, fmt.Errorf(
				"%w: argument %d: have %s, want %s: call %s",
				ErrInvalidArgumentValue,
				i,
				argVal.Type(),
				fnType.In(i),
				name,
			)
		}
		in[i] = argVal
	}

	defer func() {
		if rc := recover(); rc != nil {
			out = nil
			err = fmt.Errorf("%w: call %s: %v", ErrInvocationPanic, name, rc)
		}
	}()

	results := fn.Call(in)

	out = make([]any, len(results))
	for i, res := range results {
		out[i] = res.Interface()
	}

	return out, nil
}
