package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/retrace/internal/core/history"
	"github.com/bethropolis/retrace/internal/logger"
)

// Store keeps one snapshot file per document in Dir.
type Store struct {
	Dir    string
	Format Format
}

// NewStore creates a store writing snapshots in format f under dir.
func NewStore(dir string, f Format) *Store {
	return &Store{Dir: dir, Format: f}
}

// PathFor returns the snapshot file for docPath. The document's absolute path is
// flattened into the file name so documents with the same base name don't collide.
func (s *Store) PathFor(docPath string) (string, error) {
	if docPath == "" {
		return "", errors.New("snapshot needs a document path")
	}
	abs, err := filepath.Abs(docPath)
	if err != nil {
		return "", fmt.Errorf("resolve '%s': %w", docPath, err)
	}
	name := strings.NewReplacer(string(os.PathSeparator), "%", ":", "%").Replace(abs)
	return filepath.Join(s.Dir, name+".undo."+s.Format.Ext()), nil
}

// Save writes snap for docPath, replacing any previous file atomically.
func (s *Store) Save(docPath string, snap history.Snapshot) error {
	path, err := s.PathFor(docPath)
	if err != nil {
		return err
	}
	data, err := Encode(snap, s.Format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir '%s': %w", s.Dir, err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name()) // No-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot '%s': %w", path, err)
	}

	logger.DebugTagf("persist", "Saved history for '%s' to %s (%d bytes)", docPath, path, len(data))
	return nil
}

// Load reads the snapshot for docPath. found is false when none was saved.
func (s *Store) Load(docPath string) (snap history.Snapshot, found bool, err error) {
	path, err := s.PathFor(docPath)
	if err != nil {
		return history.Snapshot{}, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return history.Snapshot{}, false, nil
	}
	if err != nil {
		return history.Snapshot{}, false, fmt.Errorf("read snapshot '%s': %w", path, err)
	}

	snap, err = Decode(data, s.Format)
	if err != nil {
		return history.Snapshot{}, false, fmt.Errorf("snapshot '%s': %w", path, err)
	}
	return snap, true, nil
}

// Remove deletes the snapshot for docPath if one exists.
func (s *Store) Remove(docPath string) error {
	path, err := s.PathFor(docPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot '%s': %w", path, err)
	}
	return nil
}
