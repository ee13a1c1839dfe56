// Package deep provides pure path operations over nested key-value
// containers: read, write, and delete at arbitrary depth, plus grouping
// of record collections by field values.
//
// Key functions:
//   - Get: resolve a path against nested containers
//   - Put: persistent write with overwrite or accumulate semantics
//   - Delete: remove the cell named by a path
//   - GroupBy: index records into a nested tree keyed by field values
//
// No operation mutates its input. Every write rebuilds the containers
// along the written path and returns a new root; untouched branches are
// shared between input and output.
package deep
