package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/toolbox/internal/adapters/driving/httpserver"
	"github.com/custodia-labs/toolbox/internal/core/domain"
)

func TestHanoiCmd_Use(t *testing.T) {
	assert.Equal(t, "hanoi N", hanoiCmd.Use)
}

func TestHanoiCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(context.Background(), "hanoi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestHanoiCmd_JSON(t *testing.T) {
	out, err := execute(context.Background(), "hanoi", "3", "--json")
	require.NoError(t, err)

	var resp httpserver.HanoiResponse
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &resp))
	assert.Equal(t, 7, resp.Count)
	assert.Equal(t, []string{"A -> C", "A -> B", "C -> B", "A -> C", "B -> A", "B -> C", "A -> C"}, resp.Moves)
}

func TestHanoiCmd_JSONMatchesServiceBytes(t *testing.T) {
	out, err := execute(context.Background(), "hanoi", "1", "--json")
	require.NoError(t, err)

	assert.Equal(t, "{\"moves\":[\"A -> C\"],\"count\":1}\n", out)
}

func TestHanoiCmd_PlainWithVerify(t *testing.T) {
	out, err := execute(context.Background(), "hanoi", "2", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "Tower of Hanoi: 2 disks")
	assert.Contains(t, out, "1.  A -> B")
	assert.Contains(t, out, "2.  A -> C")
	assert.Contains(t, out, "3.  B -> C")
	assert.Contains(t, out, "Total: 3 moves")
	assert.Contains(t, out, "Verified: all disks on C")
}

func TestHanoiCmd_InvalidDiskCount(t *testing.T) {
	_, err := execute(context.Background(), "hanoi", "0")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDiskCount)
	assert.Equal(t, "N must be >= 1", err.Error())
}

func TestHanoiCmd_NotAnInteger(t *testing.T) {
	_, err := execute(context.Background(), "hanoi", "three")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHanoiCmd_OverConfiguredLimit(t *testing.T) {
	_, err := execute(context.Background(), "hanoi", "25", "--json")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiskCountTooLarge)
}
