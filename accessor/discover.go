package accessor

import (
	"reflect"
	"sort"
	"strings"

	"github.com/tgedikli/jsonfx/errors"
)

// FieldOf describes the field name of struct type t (or *t). Promoted
// fields of embedded structs are resolved to their absolute offset; fields
// promoted through an embedded pointer are not addressable by offset.
func FieldOf(t reflect.Type, name string) (*Field, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	sf, ok := st.FieldByName(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDiscover, "field", typeName(st)+"."+name)
	}
	return fieldAt(st, sf)
}

// FieldsOf describes the exported fields visible on struct type t, in
// declaration order. Embedded struct containers are flattened and fields
// behind embedded pointers are skipped.
func FieldsOf(t reflect.Type) ([]*Field, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	var fields []*Field
	for _, sf := range reflect.VisibleFields(st) {
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			continue
		}
		f, err := fieldAt(st, sf)
		if err != nil {
			continue
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func fieldAt(st reflect.Type, sf reflect.StructField) (*Field, error) {
	var offset uintptr
	cur := st
	for i, idx := range sf.Index {
		f := cur.Field(idx)
		offset += f.Offset
		if i == len(sf.Index)-1 {
			break
		}
		if f.Type.Kind() != reflect.Struct {
			return nil, errors.New(errors.PhaseDiscover, errors.KindUnsupported).
				Path(typeName(st), sf.Name).
				GoType(f.Type.String()).
				Detail("field is promoted through an embedded pointer").
				Build()
		}
		cur = f.Type
	}

	return &Field{
		DeclaringType: st,
		ValueType:     sf.Type,
		Name:          sf.Name,
		Offset:        offset,
	}, nil
}

// StaticField describes a package-level variable as a static field of
// declaring. ptr must be a non-nil pointer to the variable.
func StaticField(declaring reflect.Type, name string, ptr any) (*Field, error) {
	pt := reflect.TypeOf(ptr)
	if pt == nil || pt.Kind() != reflect.Pointer || reflect.ValueOf(ptr).IsNil() {
		return nil, errors.InvalidArgument(errors.PhaseDiscover, "static field storage must be a non-nil pointer")
	}
	return &Field{
		DeclaringType: declaring,
		ValueType:     pt.Elem(),
		Var:           ptr,
		Name:          name,
		Static:        true,
	}, nil
}

// ConstField describes a constant as a literal static field of declaring.
// The declared type is the dynamic type of value.
func ConstField(declaring reflect.Type, name string, value any) *Field {
	return &Field{
		DeclaringType: declaring,
		ValueType:     reflect.TypeOf(value),
		Const:         value,
		Name:          name,
		Static:        true,
		Literal:       true,
	}
}

// PropertyOf describes the accessor pair of property name on t: a getter
// named Name or GetName with no parameters and one result, and a setter
// named SetName taking that result type. Interface types yield virtual
// accessors.
func PropertyOf(t reflect.Type, name string) (*Property, error) {
	if t == nil {
		return nil, errors.InvalidArgument(errors.PhaseDiscover, "type cannot be nil")
	}

	recv := receiverType(t)
	declaring := t
	if t.Kind() == reflect.Pointer {
		declaring = t.Elem()
	}
	virtual := recv.Kind() == reflect.Interface
	skip := 1
	if virtual {
		skip = 0
	}

	p := &Property{
		DeclaringType: declaring,
		Name:          name,
	}

	for _, getter := range []string{name, "Get" + name} {
		m, ok := recv.MethodByName(getter)
		if !ok || m.Type.NumIn() != skip || m.Type.NumOut() != 1 {
			continue
		}
		p.ValueType = m.Type.Out(0)
		p.Getter = &Accessor{Name: getter, Virtual: virtual}
		p.CanRead = true
		break
	}

	if m, ok := recv.MethodByName("Set" + name); ok &&
		m.Type.NumIn() == skip+1 && m.Type.NumOut() == 0 &&
		(p.ValueType == nil || m.Type.In(skip) == p.ValueType) {
		p.ValueType = m.Type.In(skip)
		p.Setter = &Accessor{Name: "Set" + name, Virtual: virtual}
		p.CanWrite = true
	}

	if p.Getter == nil && p.Setter == nil {
		return nil, errors.NotFound(errors.PhaseDiscover, "property", typeName(declaring)+"."+name)
	}
	return p, nil
}

// PropertiesOf describes every accessor pair found on t, sorted by name.
// A property needs at least a getter; setter-only method sets are commands,
// not properties.
func PropertiesOf(t reflect.Type) ([]*Property, error) {
	if t == nil {
		return nil, errors.InvalidArgument(errors.PhaseDiscover, "type cannot be nil")
	}

	recv := receiverType(t)
	skip := 1
	if recv.Kind() == reflect.Interface {
		skip = 0
	}

	names := make(map[string]struct{})
	for i := 0; i < recv.NumMethod(); i++ {
		m := recv.Method(i)
		name := m.Name
		if strings.HasPrefix(name, "Set") && m.Type.NumIn() == skip+1 && m.Type.NumOut() == 0 {
			continue
		}
		names[strings.TrimPrefix(name, "Get")] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		if name != "" {
			sorted = append(sorted, name)
		}
	}
	sort.Strings(sorted)

	var props []*Property
	for _, name := range sorted {
		p, err := PropertyOf(t, name)
		if err != nil || !p.CanRead {
			continue
		}
		props = append(props, p)
	}
	return props, nil
}

// StaticProperty describes a pair of package-level functions as a static
// property of declaring. Either function may be nil; getter must be
// func() T and setter func(T).
func StaticProperty(declaring reflect.Type, name string, getter, setter any) (*Property, error) {
	p := &Property{
		DeclaringType: declaring,
		Name:          name,
		Static:        true,
	}

	if getter != nil {
		gt := reflect.TypeOf(getter)
		if gt.Kind() != reflect.Func || gt.NumIn() != 0 || gt.NumOut() != 1 {
			return nil, errors.New(errors.PhaseDiscover, errors.KindTypeMismatch).
				Path(memberPath(declaring, name)...).
				GoType(gt.String()).
				Expected("func() T").
				Build()
		}
		p.ValueType = gt.Out(0)
		p.Getter = &Accessor{Func: getter}
		p.CanRead = true
	}

	if setter != nil {
		st := reflect.TypeOf(setter)
		if st.Kind() != reflect.Func || st.NumIn() != 1 || st.NumOut() != 0 ||
			(p.ValueType != nil && st.In(0) != p.ValueType) {
			return nil, errors.New(errors.PhaseDiscover, errors.KindTypeMismatch).
				Path(memberPath(declaring, name)...).
				GoType(st.String()).
				Expected("func(T)").
				Build()
		}
		p.ValueType = st.In(0)
		p.Setter = &Accessor{Func: setter}
		p.CanWrite = true
	}

	if p.Getter == nil && p.Setter == nil {
		return nil, errors.InvalidArgument(errors.PhaseDiscover, "static property needs a getter or a setter")
	}
	return p, nil
}

func structType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, errors.InvalidArgument(errors.PhaseDiscover, "type cannot be nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseDiscover, nil, t.String(), "struct")
	}
	return t, nil
}
