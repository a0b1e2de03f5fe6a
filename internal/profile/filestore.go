package profile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/model"
)

// FileStore persists all profiles as one YAML mapping name → profile.
// Every read loads the whole file and every write rewrites it; the last
// fully completed save wins.
type FileStore struct {
	path string
	log  *slog.Logger

	// mu makes load-modify-save a single critical section.
	mu sync.Mutex
}

// NewFileStore opens the store at path, writing an empty mapping if the
// file does not exist yet.
func NewFileStore(path string, log *slog.Logger) (*FileStore, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &FileStore{path: path, log: log}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.SaveAll(map[string]model.PlayerProfile{}); err != nil {
			return nil, err
		}
		log.Info("initialized profile store", "path", path)
	} else if err != nil {
		return nil, &StorageError{Op: "stat", Err: err}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// GetProfile returns the stored profile, creating it with score 0 if absent.
func (s *FileStore) GetProfile(ctx context.Context, name string) (model.PlayerProfile, error) {
	if err := CheckName(name); err != nil {
		return model.PlayerProfile{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.PlayerProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("loading profiles from file", "path", s.path)
	all, err := s.load()
	if err != nil {
		return model.PlayerProfile{}, err
	}

	p, ok := all[name]
	if !ok {
		s.log.Info("creating new profile", "player", name)
		p = model.NewPlayerProfile(name)
		all[name] = p
		if err := s.save(all); err != nil {
			return model.PlayerProfile{}, err
		}
	}
	return p, nil
}

// UpdateHighScore stores score for name, creating the profile if absent.
func (s *FileStore) UpdateHighScore(ctx context.Context, name string, score int) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if err := CheckScore(score); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	p, ok := all[name]
	if !ok {
		s.log.Info("creating new profile", "player", name)
		p = model.NewPlayerProfile(name)
	}
	p.Score = score
	all[name] = p

	s.log.Debug("updating score in file", "player", name, "score", score)
	return s.save(all)
}

// LoadAll reads the whole mapping. A missing file yields an empty mapping.
func (s *FileStore) LoadAll() (map[string]model.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll replaces the whole mapping on disk.
func (s *FileStore) SaveAll(profiles map[string]model.PlayerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(profiles)
}

func (s *FileStore) load() (map[string]model.PlayerProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]model.PlayerProfile{}, nil
		}
		return nil, &StorageError{Op: "read", Err: err}
	}

	var profiles map[string]model.PlayerProfile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, &StorageError{Op: "decode", Err: fmt.Errorf("parsing %s: %w", s.path, err)}
	}
	if profiles == nil {
		profiles = map[string]model.PlayerProfile{}
	}
	return profiles, nil
}

// save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write leaves the previous save intact.
func (s *FileStore) save(profiles map[string]model.PlayerProfile) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "write", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}
