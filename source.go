package jsonfx

import "github.com/tgedikli/jsonfx/accessor"

// Source produces thunks for member and constructor descriptors.
// *accessor.Compiler compiles on every call; *cache.Thunks compiles once
// per member.
type Source interface {
	Getter(m accessor.Member) (accessor.Getter, error)
	Setter(m accessor.Member) (accessor.Setter, error)
	Factory(ctor *accessor.Constructor) (accessor.Factory, error)
}
