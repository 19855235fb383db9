// Package domain defines the core types for the toolbox services.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Peg, Move, HanoiSolution: Tower of Hanoi move sequences
//   - Tower: a three-peg board used to replay and check a move sequence
//   - Matrix, InversionError: dense matrices and typed inversion failures
//   - AppSettings: listener addresses and service limits
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
