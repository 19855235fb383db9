package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".toolbox", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("hanoi.host", "127.0.0.1"))
	require.NoError(t, store.Set("hanoi.port", 7000))
	require.NoError(t, store.Set("log.verbose", true))

	assert.Equal(t, "127.0.0.1", store.GetString("hanoi.host"))
	assert.Equal(t, 7000, store.GetInt("hanoi.port"))
	assert.True(t, store.GetBool("log.verbose"))

	// Wrong types and missing keys fall back to zero values.
	assert.Equal(t, "", store.GetString("hanoi.port"))
	assert.Equal(t, 0, store.GetInt("hanoi.host"))
	assert.False(t, store.GetBool("hanoi.host"))
	assert.Equal(t, "", store.GetString("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("hanoi.port", 7102))
	require.NoError(t, store.Set("hanoi.max_disks", 0))
	require.NoError(t, store.Set("matrix.host", "localhost"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML integers come back as int64.
	val, ok := reloaded.Get("hanoi.port")
	require.True(t, ok)
	assert.Equal(t, int64(7102), val)
	assert.Equal(t, 7102, reloaded.GetInt("hanoi.port"))
	assert.Equal(t, 0, reloaded.GetInt("hanoi.max_disks"))
	assert.Equal(t, "localhost", reloaded.GetString("matrix.host"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("matrix.port", 6101))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[matrix]")
	assert.Contains(t, string(data), "port = 6101")
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[hanoi]\nport = 9000\nmax_disks = 10\n\n[log]\nverbose = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 9000, store.GetInt("hanoi.port"))
	assert.Equal(t, 10, store.GetInt("hanoi.max_disks"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(""), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory so the write fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Save())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Channels cannot be marshaled to TOML
	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("hanoi.port", 7000+i)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("hanoi.port")
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, store.GetInt("hanoi.port"), 7000)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"hanoi": map[string]any{"port": int64(1), "host": "h"},
		"top":   true,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"hanoi.port": int64(1), "hanoi.host": "h", "top": true}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	got := nestMap(map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, got)
}
