package boxing

import (
	"reflect"
	"unsafe"

	"github.com/tgedikli/jsonfx/errors"
)

// Codec moves values of one declared type between raw storage and boxed form.
// It is immutable once built and safe for concurrent use.
type Codec struct {
	Type   reflect.Type
	Path   []string
	Layout Layout
}

// For resolves the codec for t. Path is attached to invocation errors.
func For(t reflect.Type, path ...string) Codec {
	return Codec{
		Type:   t,
		Path:   path,
		Layout: Classify(t),
	}
}

// Load boxes the value stored at p.
func (c Codec) Load(p unsafe.Pointer) any {
	switch c.Layout {
	case LayoutBool:
		return *(*bool)(p)
	case LayoutInt:
		return *(*int)(p)
	case LayoutInt8:
		return *(*int8)(p)
	case LayoutInt16:
		return *(*int16)(p)
	case LayoutInt32:
		return *(*int32)(p)
	case LayoutInt64:
		return *(*int64)(p)
	case LayoutUint:
		return *(*uint)(p)
	case LayoutUint8:
		return *(*uint8)(p)
	case LayoutUint16:
		return *(*uint16)(p)
	case LayoutUint32:
		return *(*uint32)(p)
	case LayoutUint64:
		return *(*uint64)(p)
	case LayoutUintptr:
		return *(*uintptr)(p)
	case LayoutFloat32:
		return *(*float32)(p)
	case LayoutFloat64:
		return *(*float64)(p)
	case LayoutComplex64:
		return *(*complex64)(p)
	case LayoutComplex128:
		return *(*complex128)(p)
	case LayoutString:
		return *(*string)(p)
	default:
		return reflect.NewAt(c.Type, p).Elem().Interface()
	}
}

// Store unboxes v into the storage at p. It panics with an *errors.Error
// when v does not unbox exactly to the codec's type.
func (c Codec) Store(p unsafe.Pointer, v any) {
	switch c.Layout {
	case LayoutBool:
		*(*bool)(p) = unbox[bool](c, v)
	case LayoutInt:
		*(*int)(p) = unbox[int](c, v)
	case LayoutInt8:
		*(*int8)(p) = unbox[int8](c, v)
	case LayoutInt16:
		*(*int16)(p) = unbox[int16](c, v)
	case LayoutInt32:
		*(*int32)(p) = unbox[int32](c, v)
	case LayoutInt64:
		*(*int64)(p) = unbox[int64](c, v)
	case LayoutUint:
		*(*uint)(p) = unbox[uint](c, v)
	case LayoutUint8:
		*(*uint8)(p) = unbox[uint8](c, v)
	case LayoutUint16:
		*(*uint16)(p) = unbox[uint16](c, v)
	case LayoutUint32:
		*(*uint32)(p) = unbox[uint32](c, v)
	case LayoutUint64:
		*(*uint64)(p) = unbox[uint64](c, v)
	case LayoutUintptr:
		*(*uintptr)(p) = unbox[uintptr](c, v)
	case LayoutFloat32:
		*(*float32)(p) = unbox[float32](c, v)
	case LayoutFloat64:
		*(*float64)(p) = unbox[float64](c, v)
	case LayoutComplex64:
		*(*complex64)(p) = unbox[complex64](c, v)
	case LayoutComplex128:
		*(*complex128)(p) = unbox[complex128](c, v)
	case LayoutString:
		*(*string)(p) = unbox[string](c, v)
	default:
		reflect.NewAt(c.Type, p).Elem().Set(c.Value(v))
	}
}

// Value unboxes v into a reflect.Value of the codec's type, ready to be
// passed to a call or a reflect Set. Value-like types must match exactly;
// reference-like types accept any assignable value and nil.
func (c Codec) Value(v any) reflect.Value {
	if v == nil {
		if c.Layout == LayoutReference {
			return reflect.Zero(c.Type)
		}
		panic(errors.New(errors.PhaseInvoke, errors.KindNilPointer).
			Path(c.Path...).
			Expected(c.Type.String()).
			Detail("cannot unbox nil into a value type").
			Build())
	}

	rv := reflect.ValueOf(v)
	if c.Layout == LayoutReference {
		if !rv.Type().AssignableTo(c.Type) {
			panic(c.mismatch(v))
		}
		return rv
	}
	if rv.Type() != c.Type {
		panic(c.mismatch(v))
	}
	return rv
}

// Box converts a call result back to boxed form.
func (c Codec) Box(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func (c Codec) mismatch(v any) *errors.Error {
	got := "<nil>"
	if v != nil {
		got = reflect.TypeOf(v).String()
	}
	return errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
		Path(c.Path...).
		GoType(got).
		Expected(c.Type.String()).
		Value(v).
		Detail("boxed value does not unbox to the declared type").
		Build()
}

func unbox[T any](c Codec, v any) T {
	x, ok := v.(T)
	if !ok {
		if v == nil {
			panic(errors.NilPointer(errors.PhaseInvoke, c.Path, c.Type.String()))
		}
		panic(c.mismatch(v))
	}
	return x
}
