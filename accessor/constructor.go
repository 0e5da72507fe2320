package accessor

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/tgedikli/jsonfx/accessor/internal/boxing"
	"github.com/tgedikli/jsonfx/errors"
)

// Factory compiles a construction thunk for the constructor of c's declaring
// type whose parameter list matches exactly. With no match the result is a
// nil Factory and a nil error.
//
// The thunk reads exactly len(c.ParameterTypes) arguments and ignores the
// rest. Passing fewer panics with an *errors.Error of kind out_of_bounds; a
// wrong argument type panics with one of kind type_mismatch.
func (c *Compiler) Factory(ctor *Constructor) (Factory, error) {
	if err := ctor.validate(); err != nil {
		return nil, err
	}

	path := []string{ctor.String()}
	fn, ok := c.registry.Lookup(ctor.DeclaringType, ctor.ParameterTypes)
	if !ok {
		if len(ctor.ParameterTypes) == 0 {
			if zero := zeroFactory(ctor.DeclaringType); zero != nil {
				c.log.Debug("using zero value constructor", zap.Strings("constructor", path))
				return zero, nil
			}
		}
		c.unsupported("construct", path, "no constructor with a matching parameter list")
		return nil, nil
	}

	params := make([]boxing.Codec, len(ctor.ParameterTypes))
	for i, t := range ctor.ParameterTypes {
		params[i] = boxing.For(t, path...)
	}
	result := boxing.For(fn.Type().Out(0), path...)

	c.log.Debug("resolved constructor",
		zap.Strings("constructor", path),
		zap.String("func", fn.Type().String()))

	return func(args ...any) any {
		if len(args) < len(params) {
			panic(errors.OutOfBounds(errors.PhaseInvoke, path, len(args), len(args)))
		}
		in := make([]reflect.Value, len(params))
		for i := range params {
			in[i] = params[i].Value(args[i])
		}
		return result.Box(fn.Call(in)[0])
	}, nil
}

// zeroFactory returns the implicit parameterless constructor: a pointer to
// a zero struct, or an empty map.
func zeroFactory(t reflect.Type) Factory {
	t = constructedType(t)
	switch t.Kind() {
	case reflect.Struct:
		return func(...any) any {
			return reflect.New(t).Interface()
		}
	case reflect.Map:
		return func(...any) any {
			return reflect.MakeMap(t).Interface()
		}
	default:
		return nil
	}
}
