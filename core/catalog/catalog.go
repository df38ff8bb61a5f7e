package catalog

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/inspector/core/action"
	"github.com/anoideaopen/inspector/core/editor"
	"github.com/anoideaopen/inspector/core/introspect"
	"github.com/anoideaopen/inspector/core/logger"
	"github.com/anoideaopen/inspector/core/stringsx"
	"github.com/sirupsen/logrus"
)

// Build scans target's type for registered operations and produces the
// descriptor list the panel renders, in registration order. Markers whose
// method only exists through an embedded type are skipped: operations are
// discovered on the exact declaring type, never inherited. Build never fails;
// a type with no marked operations yields an empty catalog.
func Build(target any) []*action.Descriptor {
	if target == nil {
		return nil
	}

	targetType := reflect.TypeOf(target)
	log := logger.Logger().WithField("component", "catalog")

	var descriptors []*action.Descriptor
	seen := make(map[string]struct{})

	for _, marker := range action.MarkersOf(targetType) {
		var descriptor *action.Descriptor
		if marker.Kind == action.TargetStatic {
			descriptor = buildStatic(targetType, marker, log)
		} else {
			descriptor = buildInstance(targetType, marker, log)
		}
		if descriptor == nil {
			continue
		}

		if _, dup := seen[descriptor.DisplayName]; dup {
			log.Warnf("duplicate display name %q on %s", descriptor.DisplayName, targetType)
		}
		seen[descriptor.DisplayName] = struct{}{}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors
}

func buildInstance(targetType reflect.Type, marker action.Marker, log *logrus.Entry) *action.Descriptor {
	method, ok := targetType.MethodByName(marker.Method)
	if !ok {
		log.Warnf("marked method %s not found on %s", marker.Method, targetType)
		return nil
	}

	if !introspect.DeclaredDirectly(targetType, marker.Method) {
		return nil
	}

	// method.Type carries the receiver as the first input.
	params, supported := buildParams(method.Func.Type(), 1, marker, log)

	return &action.Descriptor{
		DisplayName:    displayName(marker),
		MethodName:     marker.Method,
		Declaring:      declaring(targetType),
		Kind:           action.TargetInstance,
		Params:         params,
		FullySupported: supported,
	}
}

func buildStatic(targetType reflect.Type, marker action.Marker, log *logrus.Entry) *action.Descriptor {
	if !marker.Func.IsValid() || marker.Func.Kind() != reflect.Func {
		log.Warnf("static operation %s on %s has no function bound", marker.Method, targetType)
		return nil
	}

	params, supported := buildParams(marker.Func.Type(), 0, marker, log)

	return &action.Descriptor{
		DisplayName:    displayName(marker),
		MethodName:     marker.Method,
		Declaring:      declaring(targetType),
		Kind:           action.TargetStatic,
		Params:         params,
		FullySupported: supported,
		Func:           marker.Func,
	}
}

func buildParams(fnType reflect.Type, offset int, marker action.Marker, log *logrus.Entry) ([]action.Param, bool) {
	count := fnType.NumIn() - offset
	params := make([]action.Param, 0, count)
	supported := true

	for i := 0; i < count; i++ {
		paramType := fnType.In(i + offset)

		name := fmt.Sprintf("arg%d", i)
		if i < len(marker.ParamNames) && marker.ParamNames[i] != "" {
			name = marker.ParamNames[i]
		}

		value := defaultValue(paramType)
		if i < len(marker.Defaults) && marker.Defaults[i] != nil {
			value = marker.Defaults[i]
		}

		if !editor.IsSupported(paramType) {
			supported = false
			log.Warnf(
				"operation %s: parameter %s has unsupported type %s",
				marker.Method,
				name,
				paramType,
			)
		}

		params = append(params, action.Param{
			Name:  name,
			Type:  paramType,
			Value: value,
		})
	}

	return params, supported
}

// defaultValue seeds a parameter with its type default: nil for
// reference-semantic kinds, the zero value otherwise.
func defaultValue(t reflect.Type) any {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return nil
	}

	return reflect.Zero(t).Interface()
}

func displayName(marker action.Marker) string {
	if marker.Display != "" {
		return marker.Display
	}

	return stringsx.Nickname(marker.Method)
}

func declaring(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}
