package accessor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgedikli/jsonfx/errors"
)

func TestPropertyAccessors_Direct(t *testing.T) {
	c := NewCompiler()
	acct := &Account{owner: "ada", balance: 100}

	balance, err := PropertyOf(reflect.TypeFor[Account](), "Balance")
	require.NoError(t, err)
	get, set, err := c.Accessors(balance)
	require.NoError(t, err)
	require.NotNil(t, get)
	require.NotNil(t, set)

	assert.Equal(t, int64(100), get(acct))
	set(acct, int64(250))
	assert.Equal(t, int64(250), acct.balance)

	owner, err := PropertyOf(reflect.TypeFor[*Account](), "Owner")
	require.NoError(t, err)
	assert.Equal(t, "GetOwner", owner.Getter.Name)
	get, set, err = c.Accessors(owner)
	require.NoError(t, err)

	set(acct, "grace")
	assert.Equal(t, "grace", get(acct))
}

func TestPropertyAccessors_RoundTrip(t *testing.T) {
	c := NewCompiler()
	props, err := PropertiesOf(reflect.TypeFor[Account]())
	require.NoError(t, err)

	for _, p := range props {
		if !p.CanWrite {
			continue
		}
		t.Run(p.Name, func(t *testing.T) {
			get, set, err := c.Accessors(p)
			require.NoError(t, err)

			acct := &Account{owner: "ada", id: "A-1", balance: 42}
			before := *acct
			set(acct, get(acct))
			assert.Equal(t, before, *acct)
		})
	}
}

func TestPropertyGetter_Virtual(t *testing.T) {
	c := NewCompiler()
	p, err := PropertyOf(reflect.TypeFor[Named](), "Name")
	require.NoError(t, err)
	require.True(t, p.Getter.Virtual)
	require.True(t, p.Setter.Virtual)

	get, set, err := c.Accessors(p)
	require.NoError(t, err)

	dog, cat := &Dog{}, &Cat{}
	set(dog, "Rex")
	set(cat, "Tom")

	assert.Equal(t, "dog:rex", get(dog))
	assert.Equal(t, "cat:TOM", get(cat))
}

func TestPropertyGetter_VirtualOnConcreteDeclaringType(t *testing.T) {
	c := NewCompiler()
	p, err := PropertyOf(reflect.TypeFor[Dog](), "Name")
	require.NoError(t, err)
	p.Getter.Virtual = true

	get, err := c.PropertyGetter(p)
	require.NoError(t, err)

	assert.Equal(t, "dog:", get(&Dog{}))
	assert.Equal(t, "cat:felix", get(&Cat{name: "felix"}), "dispatch follows the dynamic type")
}

func TestPropertyGetter_DirectDispatchRejectsOtherTypes(t *testing.T) {
	c := NewCompiler()
	p, err := PropertyOf(reflect.TypeFor[Dog](), "Name")
	require.NoError(t, err)

	get, err := c.PropertyGetter(p)
	require.NoError(t, err)

	assert.Equal(t, "dog:", get(&Dog{}))
	assert.Panics(t, func() { get(&Cat{}) })
}

func TestPropertyAccessors_Unsupported(t *testing.T) {
	c := NewCompiler()

	base := func() *Property {
		p, err := PropertyOf(reflect.TypeFor[Account](), "Balance")
		require.NoError(t, err)
		return p
	}

	tests := []struct {
		mutate    func(*Property)
		name      string
		getterNil bool
		setterNil bool
	}{
		{name: "unreadable", mutate: func(p *Property) { p.CanRead = false }, getterNil: true},
		{name: "abstract getter", mutate: func(p *Property) { p.Getter.Abstract = true }, getterNil: true},
		{name: "missing getter", mutate: func(p *Property) { p.Getter = nil }, getterNil: true},
		{name: "unwritable", mutate: func(p *Property) { p.CanWrite = false }, setterNil: true},
		{name: "abstract setter", mutate: func(p *Property) { p.Setter.Abstract = true }, setterNil: true},
		{name: "missing setter", mutate: func(p *Property) { p.Setter = nil }, setterNil: true},
		{name: "unknown method", mutate: func(p *Property) { p.Getter.Name = "Nope"; p.Setter.Name = "SetNope" }, getterNil: true, setterNil: true},
		{name: "wrong value type", mutate: func(p *Property) { p.ValueType = reflect.TypeFor[int32]() }, getterNil: true, setterNil: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(p)

			get, set, err := c.Accessors(p)
			require.NoError(t, err)
			assert.Equal(t, tc.getterNil, get == nil, "getter nil")
			assert.Equal(t, tc.setterNil, set == nil, "setter nil")
		})
	}
}

func TestPropertySetter_WrongSetterShape(t *testing.T) {
	c := NewCompiler()
	p := &Property{
		DeclaringType: reflect.TypeFor[Account](),
		ValueType:     reflect.TypeFor[int](),
		Name:          "Limit",
		CanWrite:      true,
		Setter:        &Accessor{Name: "SetLimit"},
	}

	set, err := c.PropertySetter(p)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestPropertyOf_ReadOnly(t *testing.T) {
	p, err := PropertyOf(reflect.TypeFor[Account](), "ID")
	require.NoError(t, err)
	assert.True(t, p.CanRead)
	assert.False(t, p.CanWrite)

	set, err := NewCompiler().PropertySetter(p)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestPropertyAccessors_Static(t *testing.T) {
	saved := counter
	t.Cleanup(func() { counter = saved })

	c := NewCompiler(WithInstanceCheck(true))
	p, err := StaticProperty(reflect.TypeFor[Account](), "Counter", Counter, SetCounter)
	require.NoError(t, err)

	get, set, err := c.Accessors(p)
	require.NoError(t, err)
	require.NotNil(t, get)
	require.NotNil(t, set)

	set(nil, 7)
	assert.Equal(t, 7, counter)
	assert.Equal(t, 7, get(nil))
	assert.Equal(t, 7, get(&Dog{}), "instance argument is ignored")
}

func TestPropertyAccessors_StaticWithoutFunc(t *testing.T) {
	c := NewCompiler()
	p := &Property{
		DeclaringType: reflect.TypeFor[Account](),
		ValueType:     reflect.TypeFor[int](),
		Name:          "Counter",
		Static:        true,
		CanRead:       true,
		Getter:        &Accessor{},
	}

	_, err := c.PropertyGetter(p)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCompile, Kind: errors.KindInvalidArgument})
}

func TestPropertySetter_UnboxMismatchPanics(t *testing.T) {
	c := NewCompiler()
	p, err := PropertyOf(reflect.TypeFor[Account](), "Balance")
	require.NoError(t, err)
	set, err := c.PropertySetter(p)
	require.NoError(t, err)

	err = capturePanic(func() { set(&Account{}, 12) })
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseInvoke, Kind: errors.KindTypeMismatch})

	err = capturePanic(func() { set(nil, int64(1)) })
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseInvoke, Kind: errors.KindNilPointer})
}

func TestPropertyThunks_InstanceCheck(t *testing.T) {
	c := NewCompiler(WithInstanceCheck(true))

	named, err := PropertyOf(reflect.TypeFor[Named](), "Name")
	require.NoError(t, err)
	get, err := c.PropertyGetter(named)
	require.NoError(t, err)

	assert.Equal(t, "dog:", get(&Dog{}))
	err = capturePanic(func() { get(&Account{}) })
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseInvoke, Kind: errors.KindTypeMismatch})
}

func TestPropertyGetter_InvalidDescriptor(t *testing.T) {
	c := NewCompiler()
	invalid := &errors.Error{Phase: errors.PhaseCompile, Kind: errors.KindInvalidArgument}

	_, err := c.PropertyGetter(nil)
	assert.ErrorIs(t, err, invalid)

	_, err = c.PropertySetter(&Property{Name: "X", ValueType: reflect.TypeFor[int]()})
	assert.ErrorIs(t, err, invalid)

	_, err = c.PropertySetter(&Property{Name: "X", DeclaringType: reflect.TypeFor[Account]()})
	assert.ErrorIs(t, err, invalid)
}
