// SPDX-License-Identifier: MIT

package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cholesky/internal/watch"
)

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var calls atomic.Int32
	w, err := watch.New(path, func(context.Context) { calls.Add(1) }, watch.WithDebounce(100*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"matrix": [[1]]}`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	require.EqualValues(t, 1, calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var calls atomic.Int32
	w, err := watch.New(path, func(context.Context) { calls.Add(1) }, watch.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, path, w.Path())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := watch.New(filepath.Join(t.TempDir(), "missing", "m.json"), func(context.Context) {})
	require.Error(t, err)

	_, err = watch.New(filepath.Join(t.TempDir(), "m.json"), nil)
	require.Error(t, err)
}
