// File: control/store.go
// Author: solarobot <solarobot@gmail.com>
//
// Thread-safe settings store with atomic snapshot reads and hot-reload
// propagation to registered listeners.

package control

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Store is a concurrent-safe holder of the current Settings.
type Store struct {
	mu        sync.RWMutex
	current   Settings
	listeners []func(Settings)
	notify    *notifier
	log       zerolog.Logger
}

// NewStore initializes a store with the given settings and logger.
func NewStore(initial Settings, log zerolog.Logger) *Store {
	return &Store{current: initial, notify: newNotifier(), log: log}
}

// NewDefaultStore initializes a silent store with default settings.
func NewDefaultStore() *Store {
	return NewStore(DefaultSettings(), zerolog.Nop())
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the settings and dispatches reload notifications
// asynchronously, in order.
func (s *Store) Update(next Settings) {
	s.mu.Lock()
	s.current = next
	listeners := make([]func(Settings), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.log.Info().
		Int("chunk_size", next.ChunkSize).
		Int("backlog", next.Backlog).
		Msg("settings updated")

	for _, fn := range listeners {
		fn := fn
		s.notify.publish(func() { fn(next) })
	}
}

// UpdateSync replaces the settings and invokes listeners on the
// calling goroutine, for deterministic tests.
func (s *Store) UpdateSync(next Settings) {
	s.mu.Lock()
	s.current = next
	listeners := make([]func(Settings), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// OnReload registers a listener invoked after every Update.
func (s *Store) OnReload(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload loads the YAML file over the current settings and applies it.
func (s *Store) Reload(path string) error {
	conf := s.Snapshot()
	bs, err := os.ReadFile(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("settings reload failed")
		return err
	}
	if err := Unmarshal(bs, &conf); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("settings parse failed")
		return err
	}
	s.Update(conf)
	return nil
}
