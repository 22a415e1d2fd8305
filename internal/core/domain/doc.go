// Package domain defines the core business entities for Lumen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Note, Link, Video, Image, Todo: The five dashboard content types
//   - SearchableRecord: The unified, source-tagged unit of search
//   - SearchFilter / SearchResult: Query parameters and query output
//   - Facet: A category or tag value paired with its frequency count
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
