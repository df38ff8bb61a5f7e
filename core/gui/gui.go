package gui

import (
	"reflect"

	"github.com/anoideaopen/inspector/core/types"
)

// Renderer is the widget surface supplied by the host editor. Every draw call
// shows the current value next to a label and returns the possibly edited
// value. All calls happen synchronously on the host UI thread during one
// repaint; none of them block.
type Renderer interface {
	Bool(label string, v bool) bool
	Int(label string, v int64) int64
	Uint(label string, v uint64) uint64
	Float(label string, v float64) float64
	Text(label string, v string) string

	Vec2(label string, v types.Vec2) types.Vec2
	Vec3(label string, v types.Vec3) types.Vec3
	Vec4(label string, v types.Vec4) types.Vec4
	Color(label string, v types.Color) types.Color
	Rect(label string, v types.Rect) types.Rect

	// Enum draws a single-choice popup over names and returns the selected
	// index.
	Enum(label string, names []string, index int) int

	// Flags draws a multi-select bitmask popup; masks holds the numeric value
	// of each name. It returns the edited mask.
	Flags(label string, names []string, masks []int64, mask int64) int64

	// Object draws a reference picker accepting any reference compatible with
	// t, including scene-held ones. A nil return clears the reference.
	Object(label string, t reflect.Type, v types.Object) types.Object

	// Annotation renders a read-only note next to the label.
	Annotation(label, text string)

	// Warning renders a non-blocking warning row.
	Warning(text string)

	Button(label string) bool
	Foldout(label string, open bool) bool

	PushIndent()
	PopIndent()
}

// Indented runs fn one indent level deeper and restores the previous level
// even when fn returns early through a nested draw or panics.
func Indented(r Renderer, fn func()) {
	r.PushIndent()
	defer r.PopIndent()
	fn()
}
