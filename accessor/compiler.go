package accessor

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/tgedikli/jsonfx/errors"
)

// Getter reads a member of instance and returns it boxed.
type Getter func(instance any) any

// Setter unboxes value and writes it to a member of instance.
type Setter func(instance any, value any)

// Factory constructs an instance from positional boxed arguments.
type Factory func(args ...any) any

// Compiler turns descriptors into thunks. It holds only configuration and
// is safe for concurrent use.
type Compiler struct {
	log           *zap.Logger
	registry      *Registry
	checkInstance bool
}

// NewCompiler creates a compiler using the package logger and
// DefaultRegistry unless overridden by opts.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		log:      Logger(),
		registry: DefaultRegistry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the constructor registry used by Factory.
func (c *Compiler) Registry() *Registry {
	return c.registry
}

// Accessors compiles both thunks for m. Either thunk may be nil when the
// operation is unsupported for the member; the error is reserved for
// malformed descriptors.
func (c *Compiler) Accessors(m Member) (Getter, Setter, error) {
	switch m := m.(type) {
	case *Field:
		get, err := c.FieldGetter(m)
		if err != nil {
			return nil, nil, err
		}
		set, err := c.FieldSetter(m)
		if err != nil {
			return nil, nil, err
		}
		return get, set, nil

	case *Property:
		get, err := c.PropertyGetter(m)
		if err != nil {
			return nil, nil, err
		}
		set, err := c.PropertySetter(m)
		if err != nil {
			return nil, nil, err
		}
		return get, set, nil

	case nil:
		return nil, nil, errors.InvalidArgument(errors.PhaseCompile, "member descriptor cannot be nil")

	default:
		return nil, nil, errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			GoType(reflect.TypeOf(m).String()).
			Detail("unknown member descriptor").
			Build()
	}
}

// Getter compiles the read thunk for m.
func (c *Compiler) Getter(m Member) (Getter, error) {
	switch m := m.(type) {
	case *Field:
		return c.FieldGetter(m)
	case *Property:
		return c.PropertyGetter(m)
	default:
		_, _, err := c.Accessors(m)
		return nil, err
	}
}

// Setter compiles the write thunk for m.
func (c *Compiler) Setter(m Member) (Setter, error) {
	switch m := m.(type) {
	case *Field:
		return c.FieldSetter(m)
	case *Property:
		return c.PropertySetter(m)
	default:
		_, _, err := c.Accessors(m)
		return nil, err
	}
}

func (c *Compiler) unsupported(op string, path []string, reason string) {
	c.log.Debug("thunk not compiled",
		zap.String("op", op),
		zap.Error(errors.Unsupported(errors.PhaseCompile, path, reason)))
}

// instanceGuard returns a check for the instance argument, or nil when
// instance checks are disabled.
func (c *Compiler) instanceGuard(declaring reflect.Type, path []string) func(any) {
	if !c.checkInstance {
		return nil
	}
	want := receiverType(declaring)
	return func(instance any) {
		if instance == nil {
			panic(errors.New(errors.PhaseInvoke, errors.KindNilPointer).
				Path(path...).
				Expected(want.String()).
				Detail("nil instance").
				Build())
		}
		got := reflect.TypeOf(instance)
		if want.Kind() == reflect.Interface {
			if got.Implements(want) {
				return
			}
		} else if got == want {
			return
		}
		panic(errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
			Path(path...).
			GoType(got.String()).
			Expected(want.String()).
			Detail("instance has the wrong type").
			Build())
	}
}

// receiverType is the type instances of t are passed as: interfaces and
// pointers as-is, everything else by pointer.
func receiverType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return t
	default:
		return reflect.PointerTo(t)
	}
}
