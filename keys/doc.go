// Package keys provides the boundary conveniences around package deep:
// top-level key-form conversions, key/value swapping, key-name
// normalization, and the sequence-prepend primitive. None of these
// participate in deep traversal — they transform a single container
// level before or after the deep operations run.
package keys
