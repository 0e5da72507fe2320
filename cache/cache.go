// Package cache memoizes compiled thunks so each member and constructor is
// compiled at most once per Thunks, however many goroutines ask for it.
package cache

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/tgedikli/jsonfx/accessor"
)

// Thunks caches the thunks of one Compiler. Members are keyed by declaring
// type, member kind and name, constructors by declaring type and parameter
// list, always by type identity rather than type name. Descriptors sharing a
// key are assumed to describe the same member: flags such as ReadOnly or
// Abstract are not part of the key, and the first compiled result wins.
// Unsupported results (nil thunks) are cached too. Descriptor errors are
// returned as-is and never cached.
type Thunks struct {
	compiler  *accessor.Compiler
	log       *zap.Logger
	group     singleflight.Group
	getters   sync.Map // accessor.MemberKey -> accessor.Getter
	setters   sync.Map // accessor.MemberKey -> accessor.Setter
	factories sync.Map // ctorKey -> accessor.Factory
	entries   atomic.Int64
}

type ctorKey struct {
	declaring reflect.Type
	params    string // typeID of each parameter, comma-separated
}

// New wraps c. A nil compiler gets accessor.NewCompiler().
func New(c *accessor.Compiler, opts ...Option) *Thunks {
	if c == nil {
		c = accessor.NewCompiler()
	}
	t := &Thunks{
		compiler: c,
		log:      accessor.Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Option configures a Thunks.
type Option func(*Thunks)

// WithLogger sets the logger for cache misses.
func WithLogger(l *zap.Logger) Option {
	return func(t *Thunks) {
		if l != nil {
			t.log = l
		}
	}
}

// Compiler returns the wrapped compiler.
func (t *Thunks) Compiler() *accessor.Compiler {
	return t.compiler
}

// Getter returns the cached read thunk of m, compiling it on first use.
func (t *Thunks) Getter(m accessor.Member) (accessor.Getter, error) {
	key, ok := keyOf(m)
	if !ok {
		return t.compiler.Getter(m)
	}
	return load(t, &t.getters, key, "get|"+memberID(key), func() (accessor.Getter, error) {
		return t.compiler.Getter(m)
	})
}

// Setter returns the cached write thunk of m, compiling it on first use.
func (t *Thunks) Setter(m accessor.Member) (accessor.Setter, error) {
	key, ok := keyOf(m)
	if !ok {
		return t.compiler.Setter(m)
	}
	return load(t, &t.setters, key, "set|"+memberID(key), func() (accessor.Setter, error) {
		return t.compiler.Setter(m)
	})
}

// Factory returns the cached construction thunk of ctor, compiling it on
// first use.
func (t *Thunks) Factory(ctor *accessor.Constructor) (accessor.Factory, error) {
	if ctor == nil || ctor.DeclaringType == nil {
		return t.compiler.Factory(ctor)
	}
	params := make([]string, len(ctor.ParameterTypes))
	for i, p := range ctor.ParameterTypes {
		if p == nil {
			return t.compiler.Factory(ctor)
		}
		params[i] = typeID(p)
	}
	key := ctorKey{declaring: ctor.DeclaringType, params: strings.Join(params, ",")}
	return load(t, &t.factories, key, "new|"+typeID(key.declaring)+"("+key.params+")", func() (accessor.Factory, error) {
		return t.compiler.Factory(ctor)
	})
}

// Len returns the number of cached thunks, nil results included.
func (t *Thunks) Len() int {
	return int(t.entries.Load())
}

func load[T any](t *Thunks, store *sync.Map, key any, flight string, compile func() (T, error)) (T, error) {
	if v, ok := store.Load(key); ok {
		return v.(T), nil
	}

	v, err, shared := t.group.Do(flight, func() (any, error) {
		if v, ok := store.Load(key); ok {
			return v, nil
		}
		thunk, err := compile()
		if err != nil {
			return nil, err
		}
		store.Store(key, thunk)
		t.entries.Add(1)
		t.log.Debug("thunk cached", zap.String("key", flight))
		return thunk, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		t.log.Debug("thunk compile shared", zap.String("key", flight))
	}
	return v.(T), nil
}

func keyOf(m accessor.Member) (accessor.MemberKey, bool) {
	switch m := m.(type) {
	case *accessor.Field:
		if m == nil || m.DeclaringType == nil {
			return accessor.MemberKey{}, false
		}
	case *accessor.Property:
		if m == nil || m.DeclaringType == nil {
			return accessor.MemberKey{}, false
		}
	default:
		return accessor.MemberKey{}, false
	}
	return m.Key(), true
}

func memberID(k accessor.MemberKey) string {
	return typeID(k.DeclaringType) + "." + k.Name + "|" + k.Kind.String()
}

// typeID identifies t by its runtime type descriptor. Distinct types can
// print the same (function-local types, for one), so the name only follows
// the address for log readability.
func typeID(t reflect.Type) string {
	return fmt.Sprintf("%p:%s", t, t)
}
