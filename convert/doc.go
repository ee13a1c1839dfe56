// Package convert is the normalization boundary in front of package
// deep: record-like Go values go in as plain Containers, and Containers
// come back out in encodable string-keyed form.
//
// Key functions:
//   - FromStruct: reflect a struct into a Container, honoring `nestmap` tags
//   - FromStringMap: lift a decoded JSON/YAML document into Containers
//   - ToStringMap: render a Container tree string-keyed for re-encoding
//
// The deep operations themselves never special-case record shapes;
// callers convert here first.
package convert
