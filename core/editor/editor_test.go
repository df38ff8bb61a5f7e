package editor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anoideaopen/inspector/core/introspect"
	"github.com/anoideaopen/inspector/core/types"
	"github.com/anoideaopen/inspector/mock"
	"github.com/stretchr/testify/require"
)

type armor struct {
	Level int
	Label string
	Size  types.Vec2
}

type noConstruct struct {
	introspect.Reflect
}

func (noConstruct) DefaultConstruct(_ reflect.Type) (any, error) {
	return nil, errors.New("no viable constructor")
}

func TestEditNoEditRoundTripPreservesValue(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name  string
		value any
	}{
		{"bool", true},
		{"int", 7},
		{"uint", uint32(9)},
		{"float", 2.5},
		{"string", "hello"},
		{"vec3", types.Vec3{X: 1, Y: 2, Z: 3}},
		{"color", types.Color{R: 1, A: 1}},
		{"enum", toneAlert},
		{"flags", styleBold | styleItalic},
		{"slice", []float64{1.5, 2.5}},
		{"array", [2]string{"a", "b"}},
		{"composite", armor{Level: 3, Label: "mk3", Size: types.Vec2{X: 4, Y: 5}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			typ := reflect.TypeOf(testCase.value)

			first := engine.Edit(mock.NewGui(), "Value", typ, testCase.value)
			require.Equal(t, testCase.value, first)

			second := engine.Edit(mock.NewGui(), "Value", typ, first)
			require.Equal(t, testCase.value, second)
		})
	}
}

func TestEditPrimitive(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Count"] = 42

	edited := engine.Edit(g, "Count", reflect.TypeOf(0), 5)
	require.Equal(t, 42, edited)
}

func TestEditEnum(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("single choice", func(t *testing.T) {
		g := mock.NewGui()
		g.Enums["Tone"] = 2

		edited := engine.Edit(g, "Tone", reflect.TypeOf(toneCalm), toneCalm)
		require.Equal(t, toneHostile, edited)
	})

	t.Run("unknown value is kept", func(t *testing.T) {
		g := mock.NewGui()
		g.Enums["Tone"] = 1

		edited := engine.Edit(g, "Tone", reflect.TypeOf(toneCalm), tone(99))
		require.Equal(t, tone(99), edited)
		require.Len(t, g.Annotations, 1)
	})

	t.Run("bitmask", func(t *testing.T) {
		g := mock.NewGui()
		g.Masks["Style"] = int64(styleBold | styleUnderline)

		edited := engine.Edit(g, "Style", reflect.TypeOf(styleBold), styleItalic)
		require.Equal(t, styleBold|styleUnderline, edited)
	})
}

func TestEditObjectReference(t *testing.T) {
	engine := NewEngine(nil)
	refType := reflect.TypeOf(&sceneRef{})

	t.Run("pick another reference", func(t *testing.T) {
		g := mock.NewGui()
		other := &sceneRef{id: "other"}
		g.Objects["Target"] = other

		edited := engine.Edit(g, "Target", refType, &sceneRef{id: "orig"})
		require.Same(t, other, edited)
	})

	t.Run("clear reference", func(t *testing.T) {
		g := mock.NewGui()
		g.Objects["Target"] = nil

		edited := engine.Edit(g, "Target", refType, &sceneRef{id: "orig"})
		require.Nil(t, edited)
	})
}

func TestEditSequenceGrow(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Items Size"] = 4

	edited := engine.Edit(g, "Items", reflect.TypeOf([]int{}), []int{1, 2})
	require.Equal(t, []int{1, 2, 0, 0}, edited)
	require.Zero(t, g.Indent)
	require.Equal(t, 1, g.MaxIndent)
}

func TestEditSequenceShrink(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Items Size"] = 1

	edited := engine.Edit(g, "Items", reflect.TypeOf([]string{}), []string{"a", "b", "c"})
	require.Equal(t, []string{"a"}, edited)
}

func TestEditSequenceNegativeSizeClampsToEmpty(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Items Size"] = -3

	edited := engine.Edit(g, "Items", reflect.TypeOf([]int{}), []int{1})
	require.Equal(t, []int{}, edited)
}

func TestEditSequenceElementEdit(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Element 1"] = 9

	edited := engine.Edit(g, "Items", reflect.TypeOf([]int{}), []int{1, 2, 3})
	require.Equal(t, []int{1, 9, 3}, edited)
}

func TestEditArrayFixedShape(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Element 0"] = 8

	edited := engine.Edit(g, "Slots", reflect.TypeOf([3]int{}), [3]int{1, 2, 3})
	require.Equal(t, [3]int{8, 2, 3}, edited)
	require.Contains(t, g.Annotations, "Slots: size 3")
}

func TestEditGrownReferenceElementsStartAbsent(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Routes Size"] = 1

	edited := engine.Edit(g, "Routes", reflect.TypeOf([]*patrolRoute{}), []*patrolRoute(nil))

	// The appended element starts nil and is default-constructed by the
	// recursive composite edit.
	routes, ok := edited.([]*patrolRoute)
	require.True(t, ok)
	require.Len(t, routes, 1)
	require.NotNil(t, routes[0])
}

func TestEditCompositeSingleFieldIsolation(t *testing.T) {
	engine := NewEngine(nil)
	original := armor{Level: 3, Label: "mk3", Size: types.Vec2{X: 4, Y: 5}}

	g := mock.NewGui()
	g.Texts["Label"] = "mk4"

	edited := engine.Edit(g, "Armor", reflect.TypeOf(original), original)

	result, ok := edited.(armor)
	require.True(t, ok)
	require.Equal(t, "mk4", result.Label)
	require.Equal(t, original.Level, result.Level)
	require.Equal(t, original.Size, result.Size)

	// Value semantics: the input instance is untouched.
	require.Equal(t, "mk3", original.Label)
}

func TestEditCompositeNesting(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()

	route := patrolRoute{
		Name: "alpha",
		Waypoints: []waypoint{
			{Label: "start", Position: types.Vec3{X: 1}},
		},
		Next: &patrolRoute{Name: "beta", Waypoints: []waypoint{}},
	}

	edited := engine.Edit(g, "Route", reflect.TypeOf(route), route)
	require.Equal(t, route, edited)

	// route -> waypoints -> element composite: three nested levels.
	require.Zero(t, g.Indent)
	require.Equal(t, 3, g.MaxIndent)
}

func TestEditCompositeReadOnlyFields(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	value := withHiddenChannel{Name: "probe"}

	edited := engine.Edit(g, "Probe", reflect.TypeOf(value), value)
	require.Equal(t, value, edited)

	require.Len(t, g.Annotations, 1)
	require.Contains(t, g.Annotations[0], "(read-only)")
}

func TestEditUnsupportedReturnsValueUnchanged(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	value := map[string]int{"a": 1}

	edited := engine.Edit(g, "Config", reflect.TypeOf(value), value)
	require.Equal(t, value, edited)
	require.Contains(t, g.Annotations, "Config: map[string]int (unsupported)")
}

func TestEditAbsentCompositeIsConstructed(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()

	edited := engine.Edit(g, "Waypoint", reflect.TypeOf(&waypoint{}), nil)
	require.NotNil(t, edited)
	require.IsType(t, &waypoint{}, edited)
}

func TestEditConstructionFailureWarnsAndKeepsValue(t *testing.T) {
	engine := NewEngine(noConstruct{})

	g := mock.NewGui()

	edited := engine.Edit(g, "Route", reflect.TypeOf(&patrolRoute{}), nil)
	require.Nil(t, edited)
	require.Len(t, g.Warnings, 1)
	require.Contains(t, g.Warnings[0], "Route")

	// The indent level survives the early return.
	require.Zero(t, g.Indent)
}

func TestEditPointerCompositeEditsInPlace(t *testing.T) {
	engine := NewEngine(nil)

	g := mock.NewGui()
	g.Ints["Level"] = 10

	original := &armor{Level: 1}
	edited := engine.Edit(g, "Armor", reflect.TypeOf(original), original)

	require.Same(t, original, edited)
	require.Equal(t, 10, original.Level)
}
