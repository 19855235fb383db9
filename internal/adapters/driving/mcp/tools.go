package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// HanoiInput is the input schema for the solve_hanoi tool.
type HanoiInput struct {
	N int `json:"n" jsonschema:"number of disks"`
}

// HanoiOutput is the output schema for the solve_hanoi tool.
type HanoiOutput struct {
	Moves []string `json:"moves"`
	Count int      `json:"count"`
}

// MatrixInput is the input schema for the invert_matrix tool.
type MatrixInput struct {
	Matrix [][]float64 `json:"matrix" jsonschema:"square matrix given as a list of rows"`
}

// MatrixOutput is the output schema for the invert_matrix tool.
// Tool outputs must be objects, so the inverse is wrapped.
type MatrixOutput struct {
	Inverse [][]float64 `json:"inverse"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve_hanoi",
		Description: "Solve the Towers of Hanoi puzzle for N disks.",
	}, s.handleSolveHanoi)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "invert_matrix",
		Description: "Invert a square matrix given as a list of lists.",
	}, s.handleInvertMatrix)
}

// handleSolveHanoi handles the solve_hanoi tool invocation.
func (s *Server) handleSolveHanoi(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HanoiInput,
) (*mcp.CallToolResult, HanoiOutput, error) {
	solution, err := s.ports.Hanoi.Solve(ctx, input.N)
	if err != nil {
		return nil, HanoiOutput{}, err
	}

	return nil, HanoiOutput{
		Moves: solution.MoveStrings(),
		Count: solution.Count,
	}, nil
}

// handleInvertMatrix handles the invert_matrix tool invocation.
func (s *Server) handleInvertMatrix(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatrixInput,
) (*mcp.CallToolResult, MatrixOutput, error) {
	inv, err := s.ports.Matrix.Invert(ctx, domain.Matrix(input.Matrix))
	if err != nil {
		return nil, MatrixOutput{}, err
	}

	return nil, MatrixOutput{Inverse: inv}, nil
}
