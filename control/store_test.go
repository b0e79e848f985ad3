// File: control/store_test.go
// Author: solarobot <solarobot@gmail.com>

package control

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsACopy(t *testing.T) {
	st := NewDefaultStore()
	snap := st.Snapshot()
	snap.Backlog = 9999
	assert.Equal(t, 64, st.Snapshot().Backlog)
}

func TestUpdateSyncInvokesListeners(t *testing.T) {
	st := NewDefaultStore()
	var seen []int
	st.OnReload(func(conf Settings) { seen = append(seen, conf.Backlog) })
	st.OnReload(func(conf Settings) { seen = append(seen, -conf.Backlog) })

	next := DefaultSettings()
	next.Backlog = 7
	st.UpdateSync(next)

	assert.Equal(t, []int{7, -7}, seen)
	assert.Equal(t, 7, st.Snapshot().Backlog)
}

func TestUpdateDeliversInOrder(t *testing.T) {
	st := NewDefaultStore()
	got := make(chan int, 16)
	st.OnReload(func(conf Settings) { got <- conf.Backlog })

	for i := 1; i <= 5; i++ {
		next := DefaultSettings()
		next.Backlog = i
		st.Update(next)
	}
	for i := 1; i <= 5; i++ {
		select {
		case v := <-got:
			require.Equal(t, i, v)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for update %d", i)
		}
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("chunksize: 2048\n"), 0o644))

	st := NewStore(DefaultSettings(), zerolog.Nop())
	require.NoError(t, st.Reload(path))
	assert.Equal(t, 2048, st.Snapshot().ChunkSize)
	// Untouched fields keep their previous values.
	assert.Equal(t, 64, st.Snapshot().Backlog)
}

func TestReloadMissingFileKeepsSettings(t *testing.T) {
	st := NewDefaultStore()
	err := st.Reload(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), st.Snapshot())
}

func TestNotifierDrainsInOrder(t *testing.T) {
	n := newNotifier()
	got := make(chan int, 32)
	for i := 0; i < 20; i++ {
		i := i
		n.publish(func() { got <- i })
	}
	for i := 0; i < 20; i++ {
		select {
		case v := <-got:
			require.Equal(t, i, v)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}
