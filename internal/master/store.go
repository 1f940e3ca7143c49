package master

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tertulia/internal/decision"
	"tertulia/internal/episode"
	"tertulia/internal/fileutil"
	"tertulia/internal/logging"
	"tertulia/internal/pipeline"
)

// Store reads and writes the master episode JSON.
type Store struct {
	path string
	lock *flock.Flock
	log  *slog.Logger
}

// NewStore returns a store for the master file at path.
func NewStore(path string, log *slog.Logger) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
		log:  log.With(logging.String(logging.FieldComponent, "master")),
	}
}

// Path returns the master file location.
func (s *Store) Path() string {
	return s.path
}

// Acquire takes the mutation lock, failing fast when another invocation
// holds it. Callers must Release when done.
func (s *Store) Acquire() error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "master", "lock", s.lock.Path(), err)
	}
	if !locked {
		return pipeline.Wrap(pipeline.ErrFatal, "master", "lock",
			fmt.Sprintf("another run holds %s", s.lock.Path()), nil)
	}
	return nil
}

// Release drops the mutation lock.
func (s *Store) Release() {
	if err := s.lock.Unlock(); err != nil {
		s.log.Warn("failed to release lock", logging.Error(err))
	}
}

// Load reads the master episode array. Invalid JSON is fatal; the caller
// must not write anything afterwards.
func (s *Store) Load() ([]episode.Episode, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "master", "load", s.path, err)
	}
	var episodes []episode.Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "master", "load",
			fmt.Sprintf("invalid JSON in %s", s.path), err)
	}
	return episodes, nil
}

// Backup copies the master file aside with a timestamped name. A backup
// failure is escalated to the decision provider; declining aborts the run.
func (s *Store) Backup(dec decision.Provider) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	backup, err := fileutil.BackupFile(s.path)
	if err != nil {
		s.log.Error("backup failed", logging.Error(err))
		if !dec.Confirm("Backup failed, continue without one?", false) {
			return pipeline.Wrap(pipeline.ErrFatal, "master", "backup", s.path, err)
		}
		return nil
	}
	s.log.Info("backup created", logging.String("path", backup))
	return nil
}

// Write persists the episode list pretty-printed with non-ASCII characters
// intact. When the encoded bytes match the current file content nothing is
// written; the returned flag reports whether the file changed.
func (s *Store) Write(episodes []episode.Episode) (bool, error) {
	data, err := Encode(episodes)
	if err != nil {
		return false, pipeline.Wrap(pipeline.ErrFatal, "master", "write", s.path, err)
	}
	if current, err := os.ReadFile(s.path); err == nil && bytes.Equal(current, data) {
		s.log.Info("master unchanged, skipping write")
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, pipeline.Wrap(pipeline.ErrFatal, "master", "write", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return false, pipeline.Wrap(pipeline.ErrFatal, "master", "write", s.path, err)
	}
	s.log.Info("master written",
		logging.String("path", s.path),
		logging.Int("episodes", len(episodes)))
	return true, nil
}

// WriteTo persists the list to an alternate path, with the same encoding
// and write-if-changed behavior.
func (s *Store) WriteTo(path string, episodes []episode.Episode) (bool, error) {
	alt := &Store{path: path, log: s.log}
	return alt.Write(episodes)
}

// Encode renders episodes as the canonical master JSON: two-space indent,
// HTML escaping off, trailing newline.
func Encode(episodes []episode.Episode) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(episodes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
