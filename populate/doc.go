// Package populate synthesizes fully populated Go values for test fixtures.
//
// New[T] builds a T with every exported, settable field filled: scalars from the generator's
// scalar table, nested objects recursively, slices, arrays, maps, channels and iter.Seq
// sequences with a random number of elements, and enumerations from their registered members.
//
// Self-referential type graphs terminate after one level: a field whose type is already being
// constructed further up the current path is left empty (nil pointer, empty slice or map).
// Struct-valued (non-pointer) fields are left at their zero value; struct elements of
// collections are populated.
//
// Field generation can be steered with overrides (Set, Skip, SetField, SkipField), with the
// `populate` struct tag (`populate:"-"`, `populate:"email"`, `populate:"{firstname} {lastname}"`)
// and with per-type settings from an options.Config.
package populate
