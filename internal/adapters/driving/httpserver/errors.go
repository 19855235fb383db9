// Package httpserver exposes the tool services as plain JSON-over-HTTP
// endpoints for tool-calling orchestrators.
//
// Each service runs on its own listener:
//
//   - POST /tool/hanoi  {"n": 3}                 -> {"moves": [...], "count": 7}
//   - POST /tool/matrix {"matrix": [[1,2],[3,4]]} -> [[-2,1],[1.5,-0.5]]
//
// Errors are returned as {"detail": "<message>"}.
package httpserver

import "errors"

var (
	// ErrMissingHanoiService is returned when the hanoi service is not provided.
	ErrMissingHanoiService = errors.New("httpserver: hanoi service is required")

	// ErrMissingMatrixService is returned when the matrix service is not provided.
	ErrMissingMatrixService = errors.New("httpserver: matrix service is required")
)
