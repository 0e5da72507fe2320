package accessor

import (
	"reflect"
	"strings"

	"github.com/tgedikli/jsonfx/errors"
)

// MemberKind discriminates member descriptors.
type MemberKind uint8

const (
	MemberField MemberKind = iota
	MemberProperty
)

func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Member is a field or property descriptor. The set of implementations is
// closed: *Field and *Property.
type Member interface {
	Kind() MemberKind
	Key() MemberKey
	member()
}

// MemberKey identifies a member independently of its descriptor instance.
type MemberKey struct {
	DeclaringType reflect.Type
	Name          string
	Kind          MemberKind
}

// Field describes a struct field, a package-level variable (static field) or
// a constant (literal field).
type Field struct {
	DeclaringType reflect.Type
	ValueType     reflect.Type

	// Var points at the storage of a static, non-literal field.
	Var any
	// Const holds the value of a literal field.
	Const any

	Name string

	// Offset is the byte offset of an instance field inside DeclaringType.
	Offset uintptr

	Static   bool
	ReadOnly bool
	Literal  bool
}

func (f *Field) Kind() MemberKind { return MemberField }

func (f *Field) Key() MemberKey {
	return MemberKey{DeclaringType: f.DeclaringType, Name: f.Name, Kind: MemberField}
}

func (f *Field) member() {}

func (f *Field) String() string {
	return strings.Join(memberPath(f.DeclaringType, f.Name), ".")
}

func (f *Field) path() []string {
	return memberPath(f.DeclaringType, f.Name)
}

func (f *Field) validate() error {
	if f == nil {
		return errors.InvalidArgument(errors.PhaseCompile, "field descriptor cannot be nil")
	}
	if f.DeclaringType == nil {
		return errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(f.Name).
			Detail("field declaring type cannot be nil").
			Build()
	}
	if f.ValueType == nil {
		return errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(f.path()...).
			Detail("field value type cannot be nil").
			Build()
	}
	return nil
}

// Accessor describes one accessor method of a property.
type Accessor struct {
	// Func is the implementation of a static accessor.
	Func any

	// Name is the method name of an instance accessor.
	Name string

	Virtual  bool
	Abstract bool
}

// Property describes a getter/setter method pair.
type Property struct {
	DeclaringType reflect.Type
	ValueType     reflect.Type

	Getter *Accessor
	Setter *Accessor

	Name string

	Static   bool
	CanRead  bool
	CanWrite bool
}

func (p *Property) Kind() MemberKind { return MemberProperty }

func (p *Property) Key() MemberKey {
	return MemberKey{DeclaringType: p.DeclaringType, Name: p.Name, Kind: MemberProperty}
}

func (p *Property) member() {}

func (p *Property) String() string {
	return strings.Join(memberPath(p.DeclaringType, p.Name), ".")
}

func (p *Property) path() []string {
	return memberPath(p.DeclaringType, p.Name)
}

func (p *Property) validate() error {
	if p == nil {
		return errors.InvalidArgument(errors.PhaseCompile, "property descriptor cannot be nil")
	}
	if p.DeclaringType == nil {
		return errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(p.Name).
			Detail("property declaring type cannot be nil").
			Build()
	}
	if p.ValueType == nil {
		return errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
			Path(p.path()...).
			Detail("property value type cannot be nil").
			Build()
	}
	return nil
}

// Constructor describes a constructor by declaring type and exact parameter list.
type Constructor struct {
	DeclaringType  reflect.Type
	ParameterTypes []reflect.Type
}

// ConstructorOf builds a constructor descriptor.
func ConstructorOf(t reflect.Type, params ...reflect.Type) *Constructor {
	return &Constructor{DeclaringType: t, ParameterTypes: params}
}

// Signature renders the parameter list, e.g. "(int, string)".
func (c *Constructor) Signature() string {
	return signature(c.ParameterTypes)
}

func (c *Constructor) String() string {
	if c.DeclaringType == nil {
		return "<nil>" + c.Signature()
	}
	return typeName(c.DeclaringType) + c.Signature()
}

func (c *Constructor) validate() error {
	if c == nil {
		return errors.InvalidArgument(errors.PhaseCompile, "constructor descriptor cannot be nil")
	}
	if c.DeclaringType == nil {
		return errors.InvalidArgument(errors.PhaseCompile, "constructor declaring type cannot be nil")
	}
	for i, p := range c.ParameterTypes {
		if p == nil {
			return errors.New(errors.PhaseCompile, errors.KindInvalidArgument).
				Path(typeName(c.DeclaringType)).
				Value(i).
				Detail("constructor parameter %d type cannot be nil", i).
				Build()
		}
	}
	return nil
}

func signature(params []reflect.Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

func memberPath(t reflect.Type, name string) []string {
	if t == nil {
		return []string{name}
	}
	return []string{typeName(t), name}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
