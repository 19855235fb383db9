// Package services implements the driving port interfaces.
// Services contain the core business logic and call out to
// driven ports (adapters) for numerics, configuration and logging.
//
// Services hold no per-request state: every method is safe for
// concurrent use without synchronisation.
package services
