package mock

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/inspector/core/types"
)

// Gui is a scripted renderer for tests. Every widget echoes its input back
// unless an edit is scripted for its label, and every draw call is recorded
// in order. The zero value is not usable; construct with NewGui.
type Gui struct {
	// Calls lists every draw call as "kind:label" in draw order.
	Calls []string

	// Scripted edits, keyed by label. A missing entry echoes the input.
	Bools    map[string]bool
	Ints     map[string]int64
	Uints    map[string]uint64
	Floats   map[string]float64
	Texts    map[string]string
	Vec2s    map[string]types.Vec2
	Vec3s    map[string]types.Vec3
	Vec4s    map[string]types.Vec4
	Colors   map[string]types.Color
	Rects    map[string]types.Rect
	Enums    map[string]int
	Masks    map[string]int64
	Objects  map[string]types.Object
	Foldouts map[string]bool
	Pressed  map[string]bool

	// Annotations and Warnings collect read-only output.
	Annotations []string
	Warnings    []string

	// Indent tracks the current nesting level; MaxIndent the deepest level
	// reached during the run.
	Indent    int
	MaxIndent int
}

// NewGui creates a Gui with empty scripts.
func NewGui() *Gui {
	return &Gui{
		Bools:    make(map[string]bool),
		Ints:     make(map[string]int64),
		Uints:    make(map[string]uint64),
		Floats:   make(map[string]float64),
		Texts:    make(map[string]string),
		Vec2s:    make(map[string]types.Vec2),
		Vec3s:    make(map[string]types.Vec3),
		Vec4s:    make(map[string]types.Vec4),
		Colors:   make(map[string]types.Color),
		Rects:    make(map[string]types.Rect),
		Enums:    make(map[string]int),
		Masks:    make(map[string]int64),
		Objects:  make(map[string]types.Object),
		Foldouts: make(map[string]bool),
		Pressed:  make(map[string]bool),
	}
}

func (g *Gui) record(kind, label string) {
	g.Calls = append(g.Calls, kind+":"+label)
}

func (g *Gui) Bool(label string, v bool) bool {
	g.record("bool", label)
	if edited, ok := g.Bools[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Int(label string, v int64) int64 {
	g.record("int", label)
	if edited, ok := g.Ints[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Uint(label string, v uint64) uint64 {
	g.record("uint", label)
	if edited, ok := g.Uints[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Float(label string, v float64) float64 {
	g.record("float", label)
	if edited, ok := g.Floats[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Text(label string, v string) string {
	g.record("text", label)
	if edited, ok := g.Texts[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Vec2(label string, v types.Vec2) types.Vec2 {
	g.record("vec2", label)
	if edited, ok := g.Vec2s[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Vec3(label string, v types.Vec3) types.Vec3 {
	g.record("vec3", label)
	if edited, ok := g.Vec3s[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Vec4(label string, v types.Vec4) types.Vec4 {
	g.record("vec4", label)
	if edited, ok := g.Vec4s[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Color(label string, v types.Color) types.Color {
	g.record("color", label)
	if edited, ok := g.Colors[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Rect(label string, v types.Rect) types.Rect {
	g.record("rect", label)
	if edited, ok := g.Rects[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Enum(label string, names []string, index int) int {
	g.record("enum", label)
	if edited, ok := g.Enums[label]; ok {
		return edited
	}
	return index
}

func (g *Gui) Flags(label string, names []string, masks []int64, mask int64) int64 {
	g.record("flags", label)
	if edited, ok := g.Masks[label]; ok {
		return edited
	}
	return mask
}

func (g *Gui) Object(label string, t reflect.Type, v types.Object) types.Object {
	g.record("object", label)
	if edited, ok := g.Objects[label]; ok {
		return edited
	}
	return v
}

func (g *Gui) Annotation(label, text string) {
	g.record("annotation", label)
	g.Annotations = append(g.Annotations, fmt.Sprintf("%s: %s", label, text))
}

func (g *Gui) Warning(text string) {
	g.record("warning", "")
	g.Warnings = append(g.Warnings, text)
}

func (g *Gui) Button(label string) bool {
	g.record("button", label)
	return g.Pressed[label]
}

func (g *Gui) Foldout(label string, open bool) bool {
	g.record("foldout", label)
	if shown, ok := g.Foldouts[label]; ok {
		return shown
	}
	return open
}

func (g *Gui) PushIndent() {
	g.Indent++
	if g.Indent > g.MaxIndent {
		g.MaxIndent = g.Indent
	}
}

func (g *Gui) PopIndent() {
	g.Indent--
}
