package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsShow(t *testing.T) {
	out, err := execute(context.Background(), "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[Hanoi]")
	assert.Contains(t, out, "Listen: 0.0.0.0:6102")
	assert.Contains(t, out, "Max disks: 24")
	assert.Contains(t, out, "Listen: 0.0.0.0:6101")
	assert.Contains(t, out, "Verbose: false")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsInit(t *testing.T) {
	out, err := execute(context.Background(), "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings written to :memory:")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 6102, settings.Hanoi.Listen.Port)
	assert.Equal(t, 24, settings.Hanoi.MaxDisks)
}

func TestMaxDisksLabel(t *testing.T) {
	assert.Equal(t, "unbounded", maxDisksLabel(0))
	assert.Equal(t, "24", maxDisksLabel(24))
}
