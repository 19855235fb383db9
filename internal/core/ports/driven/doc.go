// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MatrixInverter: Dense linear-algebra inversion (gonum)
//   - ConfigStore: Application configuration (TOML file or in-memory)
//
// # Optional Interfaces
//
// These can be nil - services substitute a no-op:
//
//   - Logger: Request and failure log lines
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
