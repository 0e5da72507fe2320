package accessor

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgedikli/jsonfx/errors"
)

var (
	intType    = reflect.TypeFor[int]()
	stringType = reflect.TypeFor[string]()
	boolType   = reflect.TypeFor[bool]()
)

func widgetCompiler(t *testing.T) *Compiler {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(newWidget, newWidgetSized, NewWidget, MakePoint))
	return NewCompiler(WithRegistry(r))
}

func TestFactory_ExactMatch(t *testing.T) {
	c := widgetCompiler(t)
	widget := reflect.TypeFor[Widget]()

	tests := []struct {
		want   any
		name   string
		params []reflect.Type
		args   []any
	}{
		{name: "no parameters", want: newWidget()},
		{name: "one parameter", params: []reflect.Type{intType}, args: []any{7}, want: newWidgetSized(7)},
		{name: "two parameters", params: []reflect.Type{intType, stringType}, args: []any{5, "x"}, want: NewWidget(5, "x")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := c.Factory(ConstructorOf(widget, tc.params...))
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tc.want, f(tc.args...))
		})
	}
}

func TestFactory_PointerDeclaringType(t *testing.T) {
	c := widgetCompiler(t)

	f, err := c.Factory(ConstructorOf(reflect.TypeFor[*Widget](), intType, stringType))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, &Widget{Size: 1, Label: "one"}, f(1, "one"))
}

func TestFactory_ValueResult(t *testing.T) {
	c := widgetCompiler(t)

	f, err := c.Factory(ConstructorOf(reflect.TypeFor[Point](), intType, intType))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, Point{X: 1, Y: 2}, f(1, 2))
}

func TestFactory_NoMatch(t *testing.T) {
	c := widgetCompiler(t)

	tests := []struct {
		declaring reflect.Type
		name      string
		params    []reflect.Type
	}{
		{name: "unknown signature", declaring: reflect.TypeFor[Widget](), params: []reflect.Type{boolType}},
		{name: "parameter order matters", declaring: reflect.TypeFor[Widget](), params: []reflect.Type{stringType, intType}},
		{name: "scalar without constructors", declaring: intType},
		{name: "unregistered struct with parameters", declaring: reflect.TypeFor[Gadget](), params: []reflect.Type{intType}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := c.Factory(ConstructorOf(tc.declaring, tc.params...))
			require.NoError(t, err)
			assert.Nil(t, f)
		})
	}
}

func TestFactory_ZeroValueFallback(t *testing.T) {
	c := NewCompiler(WithRegistry(NewRegistry()))

	f, err := c.Factory(ConstructorOf(reflect.TypeFor[Gadget]()))
	require.NoError(t, err)
	require.NotNil(t, f)

	first, second := f(), f()
	assert.Equal(t, &Gadget{}, first)
	assert.NotSame(t, first, second, "each call constructs a fresh instance")

	f, err = c.Factory(ConstructorOf(reflect.TypeFor[map[string]int]()))
	require.NoError(t, err)
	require.NotNil(t, f)

	m, ok := f().(map[string]int)
	require.True(t, ok)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestFactory_RegisteredConstructorWinsOverZeroValue(t *testing.T) {
	c := widgetCompiler(t)

	f, err := c.Factory(ConstructorOf(reflect.TypeFor[Widget]()))
	require.NoError(t, err)
	assert.Equal(t, "default", f().(*Widget).Label)
}

func TestFactory_ArgumentErrors(t *testing.T) {
	c := widgetCompiler(t)
	f, err := c.Factory(ConstructorOf(reflect.TypeFor[Widget](), intType, stringType))
	require.NoError(t, err)

	err = capturePanic(func() { f(5) })
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseInvoke, Kind: errors.KindOutOfBounds})
	assert.Contains(t, err.Error(), "Widget(int, string)")

	err = capturePanic(func() { f("5", "x") })
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.PhaseInvoke, e.Phase)
	assert.Equal(t, errors.KindTypeMismatch, e.Kind)
	assert.Equal(t, "int", e.Expected)
	assert.Equal(t, "string", e.GoType)

	assert.Equal(t, NewWidget(5, "x"), f(5, "x", "ignored"), "extra arguments are ignored")
}

type tag string

func (t tag) String() string { return "#" + string(t) }

type Holder struct {
	Label  fmt.Stringer
	Widget *Widget
}

func newHolder(label fmt.Stringer, w *Widget) *Holder {
	return &Holder{Label: label, Widget: w}
}

func TestFactory_ReferenceParameters(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newHolder))
	c := NewCompiler(WithRegistry(r))

	f, err := c.Factory(ConstructorOf(reflect.TypeFor[Holder](),
		reflect.TypeFor[fmt.Stringer](), reflect.TypeFor[*Widget]()))
	require.NoError(t, err)
	require.NotNil(t, f)

	w := &Widget{Label: "knob"}
	h := f(tag("a"), w).(*Holder)
	assert.Equal(t, "#a", h.Label.String())
	assert.Same(t, w, h.Widget, "pointer arguments are passed by reference")

	h = f(nil, nil).(*Holder)
	assert.Nil(t, h.Label)
	assert.Nil(t, h.Widget)

	tests := []struct {
		name     string
		args     []any
		goType   string
		expected string
	}{
		{name: "int for interface", args: []any{42, w}, goType: "int", expected: "fmt.Stringer"},
		{name: "value for pointer", args: []any{tag("a"), Widget{}}, goType: "accessor.Widget", expected: "*accessor.Widget"},
		{name: "other pointer type", args: []any{tag("a"), &Gadget{}}, goType: "*accessor.Gadget", expected: "*accessor.Widget"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := capturePanic(func() { f(tc.args...) })
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errors.KindTypeMismatch, e.Kind)
			assert.Equal(t, tc.goType, e.GoType)
			assert.Equal(t, tc.expected, e.Expected)
		})
	}
}

func TestFactory_InvalidDescriptor(t *testing.T) {
	c := widgetCompiler(t)
	invalid := &errors.Error{Phase: errors.PhaseCompile, Kind: errors.KindInvalidArgument}

	_, err := c.Factory(nil)
	assert.ErrorIs(t, err, invalid)

	_, err = c.Factory(&Constructor{})
	assert.ErrorIs(t, err, invalid)

	_, err = c.Factory(ConstructorOf(reflect.TypeFor[Widget](), intType, nil))
	assert.ErrorIs(t, err, invalid)
}

func TestConstructor_String(t *testing.T) {
	ctor := ConstructorOf(reflect.TypeFor[*Widget](), intType, stringType)
	assert.Equal(t, "(int, string)", ctor.Signature())
	assert.Equal(t, "Widget(int, string)", ctor.String())
	assert.Equal(t, "Point()", ConstructorOf(reflect.TypeFor[Point]()).String())
}
