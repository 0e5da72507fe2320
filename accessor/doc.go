// Package accessor compiles member and constructor descriptors into thunks.
//
// A thunk is a small closure that performs exactly one fixed operation on a
// value whose concrete type is only known at runtime: read a member, write a
// member, or construct an instance. Everything that can be resolved ahead of
// time (field offsets, method indices, constant values, value layouts) is
// resolved when the thunk is compiled, so invoking it does not walk
// reflection metadata again.
//
// # Quick Start
//
//	c := accessor.NewCompiler()
//
//	type Person struct {
//	    Name string
//	    Age  int32
//	}
//
//	f, err := accessor.FieldOf(reflect.TypeFor[Person](), "Age")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	get, set, err := c.Accessors(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := &Person{}
//	set(p, int32(42)) // boxed values must have the exact field type
//	fmt.Println(get(p)) // 42
//
// # Thunk Shapes
//
//	Getter   func(instance any) any
//	Setter   func(instance any, value any)
//	Factory  func(args ...any) any
//
// Instances are pointers to the declaring type. Members declared on an
// interface type accept any implementation and dispatch through its method
// table. Static members ignore the instance argument; nil is fine.
//
// # Unsupported Members
//
// A nil thunk with a nil error means the operation cannot be compiled for
// that member: read-only and literal fields have no setter, abstract or
// unreadable properties have no getter, enumeration constants wider than
// the supported integer widths have no getter, and so on. Callers are
// expected to fall back to a generic reflection path. Only a malformed
// descriptor (nil descriptor, nil declaring or value type) is an error.
//
// # Invocation Errors
//
// Thunks do not validate the instance type unless the compiler was built
// with WithInstanceCheck(true). Boxed values are always checked on unbox;
// a mismatch panics with an *errors.Error in PhaseInvoke.
//
// # Constructors
//
// Go has no constructors; a Registry records constructor functions (any
// function returning T or *T) per declaring type:
//
//	reg := accessor.NewRegistry()
//	_ = reg.Register(NewWidget) // func(int, string) *Widget
//
//	c := accessor.NewCompiler(accessor.WithRegistry(reg))
//	newWidget, _ := c.Factory(accessor.ConstructorOf(reflect.TypeFor[Widget](),
//	    reflect.TypeFor[int](), reflect.TypeFor[string]()))
//	w := newWidget(5, "x").(*Widget)
//
// A parameterless request for a struct or map type without a registered
// parameterless constructor falls back to the zero value.
//
// # Concurrency
//
// Compilation reads only its descriptor and the compiler's configuration, so
// different descriptors can be compiled concurrently. Thunks add no locking
// of their own. See the cache package for a process-lifetime thunk cache.
package accessor
