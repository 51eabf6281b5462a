package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderscope.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config, err error) {
		if err != nil {
			return
		}
		select {
		case reloaded <- cfg:
		default:
		}
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	cfg := DefaultConfig()
	cfg.Search.Sensitivity = 0.6
	require.NoError(t, cfg.Save(path))

	select {
	case got := <-reloaded:
		assert.Equal(t, 0.6, got.Search.Sensitivity)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderscope.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(*Config, error) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("noise"), 0644))

	select {
	case <-reloaded:
		t.Fatal("Reload fired for an unrelated file")
	case <-time.After(time.Second):
	}
}

func TestWatcher_ReportsReloadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderscope.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	errs := make(chan error, 1)
	w, err := NewWatcher(path, func(cfg *Config, err error) {
		if err == nil {
			return
		}
		select {
		case errs <- err:
		default:
		}
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("search: [not a map"), 0644))

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for the reload error")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderscope.yaml")

	w, err := NewWatcher(path, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}
