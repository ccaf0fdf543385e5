// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DirectoryRegistry: Resolves symbolic roots to absolute locations
//
// # Optional Interfaces
//
//   - BookmarkStore: Bookmark persistence. Without it, the bookmark
//     service is disabled but conversions still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
