// Package store defines the generic Store contract for CRUD access to a
// collection of models, the type-erased AnyStore wrapper, the Guarded
// serialization decorator, and standard error values.
package store
