package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "orderscope", cfg.Name)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Delay())
	assert.Equal(t, 0.3, cfg.Search.Sensitivity)
	assert.Equal(t, 2, cfg.Search.MinQueryLength)
	assert.Equal(t, []float64{0, 75, 100, 150}, cfg.Search.PaymentPresets)
	assert.Equal(t, 120, cfg.Data.OrderCount)
	assert.Equal(t, int64(42), cfg.Data.Seed)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderscope.yaml")
	content := `
search:
  debounce_delay: 150ms
  sensitivity: 0.5
data:
  order_count: 30
  seed: 9
ui:
  group_by_status: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 150*time.Millisecond, cfg.Search.Delay())
	assert.Equal(t, 0.5, cfg.Search.Sensitivity)
	assert.Equal(t, 30, cfg.Data.OrderCount)
	assert.Equal(t, int64(9), cfg.Data.Seed)
	assert.True(t, cfg.UI.GroupByStatus)
	// Untouched sections keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ORDERSCOPE_LOG_LEVEL", "debug")
	t.Setenv("ORDERSCOPE_LOG_FILE", "/tmp/override.log")
	t.Setenv("ORDERSCOPE_SEED", "77")
	t.Setenv("ORDERSCOPE_DEBOUNCE_DELAY", "100ms")
	t.Setenv("ORDERSCOPE_DARK_MODE", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/override.log", cfg.Logging.File)
	assert.Equal(t, int64(77), cfg.Data.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Search.Delay())
	assert.True(t, cfg.UI.DarkMode)
}

func TestLoad_IgnoresBadEnvValues(t *testing.T) {
	t.Setenv("ORDERSCOPE_SEED", "not-a-number")
	t.Setenv("ORDERSCOPE_DEBOUNCE_DELAY", "sometime later")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Data.Seed)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Delay())
}

func TestDelay_FallsBackOnBadInput(t *testing.T) {
	for _, raw := range []string{"", "fast", "-20ms", "0s"} {
		s := SearchConfig{DebounceDelay: raw}
		assert.Equal(t, 300*time.Millisecond, s.Delay(), "input %q", raw)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orderscope.yaml")

	cfg := DefaultConfig()
	cfg.Search.Sensitivity = 0.45
	cfg.Data.OrderCount = 60
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.45, loaded.Search.Sensitivity)
	assert.Equal(t, 60, loaded.Data.OrderCount)
}
