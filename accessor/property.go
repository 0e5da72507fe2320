package accessor

import (
	"reflect"

	"github.com/tgedikli/jsonfx/accessor/internal/boxing"
	"github.com/tgedikli/jsonfx/errors"
)

// dispatch is the resolved way an accessor method is invoked.
type dispatch uint8

const (
	dispatchDirect  dispatch = iota // method value of the declaring type
	dispatchItab                    // interface method table, index resolved at compile time
	dispatchDynamic                 // method looked up on the instance's dynamic type
	dispatchStatic                  // package-level function, no receiver
)

// accessorCall is an accessor resolved at compile time.
type accessorCall struct {
	fn       reflect.Value // dispatchDirect: method expression; dispatchStatic: function
	iface    reflect.Type  // dispatchItab
	name     string        // dispatchDynamic
	index    int           // dispatchItab
	dispatch dispatch
}

func (a *accessorCall) call(instance any, args []reflect.Value) []reflect.Value {
	switch a.dispatch {
	case dispatchStatic:
		return a.fn.Call(args)
	case dispatchItab:
		slot := reflect.New(a.iface).Elem()
		slot.Set(reflect.ValueOf(instance))
		return slot.Method(a.index).Call(args)
	case dispatchDynamic:
		return reflect.ValueOf(instance).MethodByName(a.name).Call(args)
	default:
		in := make([]reflect.Value, 0, len(args)+1)
		in = append(in, reflect.ValueOf(instance))
		in = append(in, args...)
		return a.fn.Call(in)
	}
}

// PropertyGetter compiles the read thunk for p. The property must be
// readable with a concrete getter accessor.
func (c *Compiler) PropertyGetter(p *Property) (Getter, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	path := p.path()
	if !p.CanRead || p.Getter == nil || p.Getter.Abstract {
		c.unsupported("get", path, "property is not readable or its getter is abstract")
		return nil, nil
	}

	call, err := c.resolveAccessor(p, p.Getter, nil, p.ValueType)
	if err != nil || call == nil {
		return nil, err
	}

	codec := boxing.For(p.ValueType, path...)

	if call.dispatch == dispatchStatic {
		return func(any) any {
			return codec.Box(call.call(nil, nil)[0])
		}, nil
	}

	guard := c.instanceGuard(p.DeclaringType, path)
	return func(instance any) any {
		if guard != nil {
			guard(instance)
		}
		if instance == nil {
			panic(errors.NilPointer(errors.PhaseInvoke, path, receiverType(p.DeclaringType).String()))
		}
		return codec.Box(call.call(instance, nil)[0])
	}, nil
}

// PropertySetter compiles the write thunk for p. The property must be
// writable with a concrete setter accessor.
func (c *Compiler) PropertySetter(p *Property) (Setter, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	path := p.path()
	if !p.CanWrite || p.Setter == nil || p.Setter.Abstract {
		c.unsupported("set", path, "property is not writable or its setter is abstract")
		return nil, nil
	}

	call, err := c.resolveAccessor(p, p.Setter, []reflect.Type{p.ValueType}, nil)
	if err != nil || call == nil {
		return nil, err
	}

	codec := boxing.For(p.ValueType, path...)

	if call.dispatch == dispatchStatic {
		return func(_ any, value any) {
			call.call(nil, []reflect.Value{codec.Value(value)})
		}, nil
	}

	guard := c.instanceGuard(p.DeclaringType, path)
	return func(instance any, value any) {
		if guard != nil {
			guard(instance)
		}
		if instance == nil {
			panic(errors.NilPointer(errors.PhaseInvoke, path, receiverType(p.DeclaringType).String()))
		}
		call.call(instance, []reflect.Value{codec.Value(value)})
	}, nil
}

// resolveAccessor binds acc to a callable and checks its signature: in are
// the expected parameter types (receiver excluded), out the expected result
// type or nil for none. A nil call with a nil error means the accessor has
// no usable implementation.
func (c *Compiler) resolveAccessor(p *Property, acc *Accessor, in []reflect.Type, out reflect.Type) (*accessorCall, error) {
	path := p.path()

	if p.Static {
		if acc.Func == nil {
			return nil, errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
				Path(path...).
				Detail("static accessor has no function").
				Build()
		}
		fn := reflect.ValueOf(acc.Func)
		if fn.Kind() != reflect.Func || fn.IsNil() || !matchSignature(fn.Type(), 0, in, out) {
			c.unsupported(opName(out), path, "static accessor has the wrong signature")
			return nil, nil
		}
		return &accessorCall{fn: fn, dispatch: dispatchStatic}, nil
	}

	recv := receiverType(p.DeclaringType)
	m, ok := recv.MethodByName(acc.Name)
	if !ok {
		c.unsupported(opName(out), path, "accessor method "+acc.Name+" not found")
		return nil, nil
	}

	if recv.Kind() == reflect.Interface {
		// Interface method types carry no receiver.
		if !matchSignature(m.Type, 0, in, out) {
			c.unsupported(opName(out), path, "accessor method has the wrong signature")
			return nil, nil
		}
		return &accessorCall{iface: recv, index: m.Index, dispatch: dispatchItab}, nil
	}

	if !matchSignature(m.Type, 1, in, out) {
		c.unsupported(opName(out), path, "accessor method has the wrong signature")
		return nil, nil
	}
	if acc.Virtual {
		return &accessorCall{name: acc.Name, dispatch: dispatchDynamic}, nil
	}
	return &accessorCall{fn: m.Func, dispatch: dispatchDirect}, nil
}

func matchSignature(ft reflect.Type, skip int, in []reflect.Type, out reflect.Type) bool {
	if ft.IsVariadic() || ft.NumIn() != skip+len(in) {
		return false
	}
	for i, t := range in {
		if ft.In(skip+i) != t {
			return false
		}
	}
	if out == nil {
		return ft.NumOut() == 0
	}
	return ft.NumOut() == 1 && ft.Out(0) == out
}

func opName(out reflect.Type) string {
	if out == nil {
		return "set"
	}
	return "get"
}
