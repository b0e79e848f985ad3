// File: control/settings.go
// Author: solarobot <solarobot@gmail.com>
//
// Package control holds the runtime tunables of the transport and
// their hot-reloadable store. Values load from YAML and fall back to
// defaults suitable for loopback development.

package control

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"github.com/solarobot/sockio/pool"
)

// Settings are the runtime tunables consumed by the transport and the
// programs built on it.
type Settings struct {
	// ChunkSize is the buffer size in bytes for chunked transfers.
	ChunkSize int
	// Backlog is the default listen queue depth.
	Backlog int
	// ConnectTimeoutMs bounds connection establishment, milliseconds.
	ConnectTimeoutMs int

	Log Log
}

// Log configures the diagnostic output of the non-hot paths.
type Log struct {
	Level     string
	ToConsole bool
}

// DefaultSettings returns the configuration used when no file is
// provided.
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:        pool.DefaultChunkSize,
		Backlog:          64,
		ConnectTimeoutMs: 5000,
		Log:              Log{Level: "info"},
	}
}

// Unmarshal decodes YAML bytes over the given settings, leaving
// fields absent from the document untouched. The document is decoded
// into a generic map first and applied with weak typing, so numeric
// strings and bare scalars decode the same way regardless of how the
// YAML was written.
func Unmarshal(bs []byte, conf *Settings) error {
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(bs, &m); err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           conf,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

// LoadFile reads a YAML settings file over the defaults.
func LoadFile(path string) (Settings, error) {
	conf := DefaultSettings()
	bs, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := Unmarshal(bs, &conf); err != nil {
		return conf, err
	}
	return conf, nil
}
