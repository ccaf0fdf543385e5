// Package services implements the driving port interfaces.
// Services contain the core conversion logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies.
package services
