// Package domain defines the core entities for persistable URL mapping.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SymbolicRoot: One of the four named storage locations
//   - PersistableLocation: A symbolic root plus a relative path
//   - Bookmark: A named persistable location
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
