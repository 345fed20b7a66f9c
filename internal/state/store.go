package state

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store reads and writes the game-state record at a fixed path.
type Store struct {
	path       string
	strictBool bool
	logger     *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStrictBool makes a stored False decode as false instead of true.
func WithStrictBool(strict bool) StoreOption {
	return func(s *Store) { s.strictBool = strict }
}

// WithLogger sets the logger used for load/save events.
func WithLogger(l *log.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store for the record at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Path returns the record location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing or empty record is replaced by a freshly
// written default state. A record that fails to decode yields the default
// state together with an error wrapping ErrMalformedSaveRecord.
func (s *Store) Load() (*GameState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Default(), fmt.Errorf("state: cannot read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		st := Default()
		s.logger.Debug("no saved game, writing defaults", "path", s.path)
		if err := s.Save(st); err != nil {
			return st, err
		}
		return st, nil
	}

	st, err := Decode(bytes.NewReader(data), s.strictBool)
	if err != nil {
		s.logger.Warn("discarding unreadable save record", "path", s.path, "error", err)
		return Default(), err
	}

	s.logger.Debug("loaded saved game", "path", s.path, "scene", st.Scene, "mode", st.Mode, "score", st.Score)
	return st, nil
}

// Save overwrites the record with st. The new record is written to a
// temporary file in the same directory and renamed into place.
func (s *Store) Save(st *GameState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("state: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if err := Encode(tmp, st); err != nil {
		tmp.Close()
		return fmt.Errorf("state: cannot write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("state: cannot write %s: %w", s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("state: cannot replace %s: %w", s.path, err)
	}

	s.logger.Debug("saved game", "path", s.path, "scene", st.Scene, "score", st.Score)
	return nil
}

// Reset overwrites the record with the default state.
func (s *Store) Reset() error {
	return s.Save(Default())
}
