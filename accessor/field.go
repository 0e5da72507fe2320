package accessor

import (
	"math"
	"reflect"
	"unsafe"

	"go.uber.org/zap"

	"github.com/tgedikli/jsonfx/accessor/internal/boxing"
	"github.com/tgedikli/jsonfx/errors"
)

// FieldGetter compiles the read thunk for f.
//
// Literal fields are folded: the constant is converted once and the thunk
// returns it without reading memory. Only constants whose declared type has
// a signed or unsigned 8/16/32/64-bit integer representation are folded;
// any other literal has no getter.
func (c *Compiler) FieldGetter(f *Field) (Getter, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	path := f.path()
	codec := boxing.For(f.ValueType, path...)

	if f.Literal {
		return c.constantGetter(f, path)
	}

	if f.Static {
		ptr, err := staticPointer(f)
		if err != nil {
			return nil, err
		}
		return func(any) any {
			return codec.Load(ptr)
		}, nil
	}

	offset := f.Offset
	guard := c.instanceGuard(f.DeclaringType, path)
	get := func(instance any) any {
		base := boxing.DataPointer(instance)
		if base == nil {
			panic(errors.NilPointer(errors.PhaseInvoke, path, receiverType(f.DeclaringType).String()))
		}
		return codec.Load(unsafe.Add(base, offset))
	}
	if guard == nil {
		return get, nil
	}
	return func(instance any) any {
		guard(instance)
		return get(instance)
	}, nil
}

// FieldSetter compiles the write thunk for f. Read-only and literal fields
// never have one.
func (c *Compiler) FieldSetter(f *Field) (Setter, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	path := f.path()
	if f.ReadOnly || f.Literal {
		c.unsupported("set", path, "read-only or literal field")
		return nil, nil
	}

	codec := boxing.For(f.ValueType, path...)

	if f.Static {
		ptr, err := staticPointer(f)
		if err != nil {
			return nil, err
		}
		return func(_ any, value any) {
			codec.Store(ptr, value)
		}, nil
	}

	offset := f.Offset
	guard := c.instanceGuard(f.DeclaringType, path)
	set := func(instance any, value any) {
		base := boxing.DataPointer(instance)
		if base == nil {
			panic(errors.NilPointer(errors.PhaseInvoke, path, receiverType(f.DeclaringType).String()))
		}
		codec.Store(unsafe.Add(base, offset), value)
	}
	if guard == nil {
		return set, nil
	}
	return func(instance any, value any) {
		guard(instance)
		set(instance, value)
	}, nil
}

func (c *Compiler) constantGetter(f *Field, path []string) (Getter, error) {
	if f.Const == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(path...).
			Detail("literal field has no constant value").
			Build()
	}

	folded, ok := foldConstant(f.ValueType, f.Const)
	if !ok {
		c.unsupported("get", path, "constant does not have an 8, 16, 32 or 64-bit integer representation")
		return nil, nil
	}

	c.log.Debug("folded constant",
		zap.Strings("member", path),
		zap.Any("value", folded))

	return func(any) any {
		return folded
	}, nil
}

// foldConstant converts the constant v to t, which must have a signed or
// unsigned integer representation the value fits in.
func foldConstant(t reflect.Type, v any) (any, bool) {
	cv := reflect.ValueOf(v)
	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		n, ok := constInt(cv)
		if !ok || out.OverflowInt(n) {
			return nil, false
		}
		out.SetInt(n)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		n, ok := constUint(cv)
		if !ok || out.OverflowUint(n) {
			return nil, false
		}
		out.SetUint(n)
	default:
		return nil, false
	}
	return out.Interface(), true
}

func constInt(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

func constUint(v reflect.Value) (uint64, bool) {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// staticPointer resolves the storage of a static field. Var must be a
// non-nil pointer to the field's value type.
func staticPointer(f *Field) (unsafe.Pointer, error) {
	want := reflect.PointerTo(f.ValueType)
	if f.Var == nil || reflect.TypeOf(f.Var) != want {
		got := "<nil>"
		if f.Var != nil {
			got = reflect.TypeOf(f.Var).String()
		}
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(f.path()...).
			GoType(got).
			Expected(want.String()).
			Detail("static field storage must be a pointer to its value type").
			Build()
	}
	ptr := reflect.ValueOf(f.Var).UnsafePointer()
	if ptr == nil {
		return nil, errors.NilPointer(errors.PhaseCompile, f.path(), want.String())
	}
	return ptr, nil
}
