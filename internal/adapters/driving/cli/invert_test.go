package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

func TestInvertCmd_Use(t *testing.T) {
	assert.Equal(t, "invert MATRIX_JSON", invertCmd.Use)
}

func TestInvertCmd_JSON(t *testing.T) {
	out, err := execute(context.Background(), "invert", "[[4,7],[2,6]]", "--json")
	require.NoError(t, err)

	var inv [][]float64
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &inv))
	require.Len(t, inv, 2)
	assert.InDelta(t, 0.6, inv[0][0], 1e-9)
	assert.InDelta(t, -0.7, inv[0][1], 1e-9)
	assert.InDelta(t, -0.2, inv[1][0], 1e-9)
	assert.InDelta(t, 0.4, inv[1][1], 1e-9)
}

func TestInvertCmd_JSONSingleCell(t *testing.T) {
	out, err := execute(context.Background(), "invert", "[[4]]", "--json")
	require.NoError(t, err)

	assert.Equal(t, "[[0.25]]\n", out)
}

func TestInvertCmd_TrailingDataRejected(t *testing.T) {
	_, err := execute(context.Background(), "invert", "[[4]] [[2]]", "--json")

	var invErr *domain.InversionError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, domain.InversionErrorShape, invErr.Kind)
}

func TestInvertCmd_Plain(t *testing.T) {
	out, err := execute(context.Background(), "invert", "[[4]]")
	require.NoError(t, err)

	assert.Contains(t, out, "Inverse")
	assert.Contains(t, out, "0.25")
}

func TestInvertCmd_NotSquare(t *testing.T) {
	_, err := execute(context.Background(), "invert", "[[1,2,3],[4,5,6]]")

	var invErr *domain.InversionError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, domain.InversionErrorDimension, invErr.Kind)
	assert.Equal(t, "Matrix must be 2D and square", err.Error())
}

func TestInvertCmd_Singular(t *testing.T) {
	_, err := execute(context.Background(), "invert", "[[1,2],[2,4]]")

	var invErr *domain.InversionError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, domain.InversionErrorSingular, invErr.Kind)
}
