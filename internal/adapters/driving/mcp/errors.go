// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// toolbox. It offers the same tools the HTTP services expose, solve_hanoi and
// invert_matrix, to MCP-capable assistants.
package mcp

import "errors"

var (
	// ErrMissingHanoiService is returned when the hanoi service is not provided.
	ErrMissingHanoiService = errors.New("mcp: hanoi service is required")

	// ErrMissingMatrixService is returned when the matrix service is not provided.
	ErrMissingMatrixService = errors.New("mcp: matrix service is required")
)
