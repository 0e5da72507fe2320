// Package jsonfx compiles runtime accessors for Go values whose types are
// only known at runtime.
//
// Given a descriptor of a struct field, package-level variable, constant,
// getter/setter method pair or constructor, the library produces a small
// closure (a thunk) that reads, writes or constructs through a uniform
// boxed calling convention. Serializers and binders compile thunks once per
// member and invoke them for every value.
//
// # Architecture Overview
//
//	jsonfx/              Root package with the thunk Source interface
//	├── accessor/        Descriptors, discovery, the Compiler and constructor Registry
//	│   └── internal/boxing/  Value layouts and box/unbox codecs
//	├── cache/           Compile-once thunk cache shared across goroutines
//	├── errors/          Structured error types for debugging
//	└── cmd/thunks/      Inspector CLI and TUI
//
// # Quick Start
//
//	c := accessor.NewCompiler()
//	thunks := cache.New(c)
//
//	f, err := accessor.FieldOf(reflect.TypeFor[Person](), "Name")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	get, err := thunks.Getter(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(get(&Person{Name: "Ada"})) // "Ada"
//
// # Unsupported Members
//
// A nil thunk with a nil error means the operation does not exist for the
// member: read-only fields have no setter, abstract accessors have no thunk,
// and enumeration constants with a non-integer representation cannot be
// folded. Errors are reserved for malformed descriptors.
//
// # Thread Safety
//
// Compiler, Registry and cache.Thunks are safe for concurrent use. Thunks
// themselves hold no mutable state; concurrent thunk calls on the same
// instance race exactly like the equivalent direct Go code would.
package jsonfx
