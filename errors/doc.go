// Package errors provides structured error types for the jsonfx accessor core.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: member path, actual/expected Go type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
//		Path("Person", "Age").
//		GoType("string").
//		Expected("int32").
//		Detail("cannot unbox value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseInvoke, path, "string", "int32")
//	err := errors.InvalidArgument(errors.PhaseCompile, "descriptor cannot be nil")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
