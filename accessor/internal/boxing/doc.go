// Package boxing defines how member values cross a thunk boundary.
//
// Every thunk exchanges values as a plain Go interface value ("boxed").
// A Codec is resolved once per declared value type at compile time and then
// moves values between raw member storage and the boxed form through a switch
// on the value's Layout:
//
//	Layout          Load                          Store
//	────────────────────────────────────────────────────────────────────
//	bool..string    *(*T)(ptr)                    exact type assertion
//	reference       reflect.NewAt(t, ptr).Elem()  assignable check, nil ok
//	composite       reflect.NewAt(t, ptr).Elem()  exact type, copy
//
// Boxing value-like data always copies. Unboxing never converts between
// types: a boxed int32 does not unbox into an int64 member.
//
// This package is internal to the accessor.
package boxing
