package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "cache"), filepath.Join(dir, "logs", "omni_system.log"))
}

func TestSaveLoadScoutCache_RoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveScoutCache(ctx, `[{"keywords":["x"]}]`, `[{"topic":"ai"}]`))

	arxivJSON, newsJSON, err := st.LoadScoutCache(ctx)
	require.NoError(t, err)
	require.Equal(t, `[{"keywords":["x"]}]`, arxivJSON)
	require.Equal(t, `[{"topic":"ai"}]`, newsJSON)
}

func TestLoadScoutCache_MissingFile(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	_, _, err := st.LoadScoutCache(context.Background())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestLoadScoutCache_TornPair — присутствует только один файл пары:
// чтение отказывает, несогласованная пара не маскируется.
func TestLoadScoutCache_TornPair(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, os.MkdirAll(st.cacheDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(st.cacheDir, arxivCacheName), []byte("[]"), 0o644))

	_, _, err := st.LoadScoutCache(context.Background())
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Contains(t, err.Error(), newsCacheName)
}

func TestSaveScript(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.SaveScript(context.Background(), "Hook: ..."))

	payload, err := os.ReadFile(filepath.Join(st.cacheDir, scriptCacheName))
	require.NoError(t, err)
	require.Equal(t, "Hook: ...", string(payload))
}

func TestAppendEvent_LineFormat(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	st.now = func() time.Time {
		return time.Date(2025, 7, 14, 9, 30, 5, 123456789, time.UTC)
	}

	ctx := context.Background()
	require.NoError(t, st.AppendEvent(ctx, "collect ok: 6 groups"))
	require.NoError(t, st.AppendEvent(ctx, "humanizer script ready"))

	payload, err := os.ReadFile(st.logPath)
	require.NoError(t, err)
	require.Equal(t,
		"2025-07-14T09:30:05 | collect ok: 6 groups\n"+
			"2025-07-14T09:30:05 | humanizer script ready\n",
		string(payload))
}
