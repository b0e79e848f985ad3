// File: control/settings_test.go
// Author: solarobot <solarobot@gmail.com>

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	conf := DefaultSettings()
	assert.Equal(t, 8192, conf.ChunkSize)
	assert.Equal(t, 64, conf.Backlog)
	assert.Equal(t, 5000, conf.ConnectTimeoutMs)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestUnmarshalPartialKeepsDefaults(t *testing.T) {
	conf := DefaultSettings()
	err := Unmarshal([]byte("backlog: 256\n"), &conf)
	require.NoError(t, err)
	assert.Equal(t, 256, conf.Backlog)
	assert.Equal(t, 8192, conf.ChunkSize)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestUnmarshalWeakTyping(t *testing.T) {
	conf := DefaultSettings()
	bs := []byte(`chunksize: "4096"
connecttimeoutms: 1500
log:
  level: debug
  toconsole: "true"
`)
	err := Unmarshal(bs, &conf)
	require.NoError(t, err)
	assert.Equal(t, 4096, conf.ChunkSize)
	assert.Equal(t, 1500, conf.ConnectTimeoutMs)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.True(t, conf.Log.ToConsole)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	conf := DefaultSettings()
	err := Unmarshal([]byte(":\n\t:::not yaml"), &conf)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("backlog: 32\n"), 0o644))

	conf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 32, conf.Backlog)
	assert.Equal(t, 8192, conf.ChunkSize)
}

func TestLoadFileMissing(t *testing.T) {
	conf, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
	// Defaults still come back so the caller can proceed.
	assert.Equal(t, 64, conf.Backlog)
}
