package accessor

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/tgedikli/jsonfx/errors"
)

// DefaultRegistry is used by compilers built without WithRegistry.
var DefaultRegistry = NewRegistry()

// Registry records constructor functions per declaring type. A constructor
// is any non-variadic function with a single result of type T or *T; it is
// registered under T. Unexported functions register like any other.
type Registry struct {
	ctors map[reflect.Type][]constructorFunc
	mu    sync.RWMutex
}

type constructorFunc struct {
	fn     reflect.Value
	params []reflect.Type
}

// NewRegistry creates an empty constructor registry.
func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[reflect.Type][]constructorFunc),
	}
}

// Register adds constructor functions. Registering a second constructor
// with the same parameter list for the same type is an error.
func (r *Registry) Register(fns ...any) error {
	for _, fn := range fns {
		if err := r.register(fn); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(fn any) error {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		got := "<nil>"
		if fn != nil {
			got = reflect.TypeOf(fn).String()
		}
		return errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			GoType(got).
			Detail("constructor must be a function").
			Build()
	}

	ft := rv.Type()
	if ft.IsVariadic() {
		return errors.Registration(ft.String(), fmt.Errorf("variadic constructors are not supported"))
	}
	if ft.NumOut() != 1 {
		return errors.Registration(ft.String(), fmt.Errorf("constructor must return exactly one value, got %d", ft.NumOut()))
	}

	declaring := constructedType(ft.Out(0))
	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.ctors[declaring] {
		if sameTypes(existing.params, params) {
			return errors.Registration(ft.String(),
				fmt.Errorf("%s already has a constructor %s", declaring, signature(params)))
		}
	}
	r.ctors[declaring] = append(r.ctors[declaring], constructorFunc{fn: rv, params: params})
	return nil
}

// Lookup finds the constructor of t whose parameter list matches params exactly.
func (r *Registry) Lookup(t reflect.Type, params []reflect.Type) (reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.ctors[constructedType(t)] {
		if sameTypes(c.params, params) {
			return c.fn, true
		}
	}
	return reflect.Value{}, false
}

// Constructors lists the registered constructor descriptors of t.
func (r *Registry) Constructors(t reflect.Type) []*Constructor {
	t = constructedType(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Constructor, 0, len(r.ctors[t]))
	for _, c := range r.ctors[t] {
		out = append(out, ConstructorOf(t, c.params...))
	}
	return out
}

// Len returns the number of registered constructors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, cs := range r.ctors {
		n += len(cs)
	}
	return n
}

// constructedType strips one level of unnamed pointer: *T constructs T.
func constructedType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return t.Elem()
	}
	return t
}

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
