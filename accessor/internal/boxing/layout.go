package boxing

import (
	"reflect"
	"unsafe"
)

// Layout classifies how a value type is stored and boxed.
type Layout uint8

const (
	LayoutBool Layout = iota
	LayoutInt
	LayoutInt8
	LayoutInt16
	LayoutInt32
	LayoutInt64
	LayoutUint
	LayoutUint8
	LayoutUint16
	LayoutUint32
	LayoutUint64
	LayoutUintptr
	LayoutFloat32
	LayoutFloat64
	LayoutComplex64
	LayoutComplex128
	LayoutString
	LayoutReference
	LayoutComposite
)

var layoutNames = [...]string{
	LayoutBool:       "bool",
	LayoutInt:        "int",
	LayoutInt8:       "int8",
	LayoutInt16:      "int16",
	LayoutInt32:      "int32",
	LayoutInt64:      "int64",
	LayoutUint:       "uint",
	LayoutUint8:      "uint8",
	LayoutUint16:     "uint16",
	LayoutUint32:     "uint32",
	LayoutUint64:     "uint64",
	LayoutUintptr:    "uintptr",
	LayoutFloat32:    "float32",
	LayoutFloat64:    "float64",
	LayoutComplex64:  "complex64",
	LayoutComplex128: "complex128",
	LayoutString:     "string",
	LayoutReference:  "reference",
	LayoutComposite:  "composite",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return "unknown"
}

// IsDirect reports whether values of this layout are loaded and stored
// without going through reflect.
func (l Layout) IsDirect() bool {
	return l <= LayoutString
}

// Predeclared types only: a defined type such as `type Color int8` must box
// as Color, so it takes the composite path.
var directLayouts = map[reflect.Type]Layout{
	reflect.TypeFor[bool]():       LayoutBool,
	reflect.TypeFor[int]():        LayoutInt,
	reflect.TypeFor[int8]():       LayoutInt8,
	reflect.TypeFor[int16]():      LayoutInt16,
	reflect.TypeFor[int32]():      LayoutInt32,
	reflect.TypeFor[int64]():      LayoutInt64,
	reflect.TypeFor[uint]():       LayoutUint,
	reflect.TypeFor[uint8]():      LayoutUint8,
	reflect.TypeFor[uint16]():     LayoutUint16,
	reflect.TypeFor[uint32]():     LayoutUint32,
	reflect.TypeFor[uint64]():     LayoutUint64,
	reflect.TypeFor[uintptr]():    LayoutUintptr,
	reflect.TypeFor[float32]():    LayoutFloat32,
	reflect.TypeFor[float64]():    LayoutFloat64,
	reflect.TypeFor[complex64]():  LayoutComplex64,
	reflect.TypeFor[complex128](): LayoutComplex128,
	reflect.TypeFor[string]():     LayoutString,
}

// Classify returns the layout used for values of type t.
func Classify(t reflect.Type) Layout {
	if l, ok := directLayouts[t]; ok {
		return l
	}
	if IsReferenceLike(t) {
		return LayoutReference
	}
	return LayoutComposite
}

// IsReferenceLike reports whether t already behaves as a reference: boxing
// it shares the referenced data instead of copying it.
func IsReferenceLike(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice:
		return true
	default:
		return false
	}
}

type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// DataPointer returns the data word of v. For pointer values this is the
// pointer itself; no type check is performed.
func DataPointer(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}
