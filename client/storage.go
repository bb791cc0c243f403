package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// The only durable client state: one token string and one theme string,
// each under its own fixed key.
const (
	tokenKey = "token"
	themeKey = "theme"
)

type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps each value in its own file under a per-user data dir.
type FileStore struct {
	dir string
}

func NewFileStore() (*FileStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, "fitness-tracker")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) get(key string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) set(key, value string) error {
	return os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0o600)
}

func (s *FileStore) delete(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) Load() (string, error)   { return s.get(tokenKey) }
func (s *FileStore) Save(token string) error { return s.set(tokenKey, token) }
func (s *FileStore) Clear() error            { return s.delete(tokenKey) }

// Theme returns the persisted UI preference, defaulting to "light".
func (s *FileStore) Theme() string {
	theme, err := s.get(themeKey)
	if err != nil || (theme != "light" && theme != "dark") {
		return "light"
	}
	return theme
}

func (s *FileStore) SetTheme(theme string) error { return s.set(themeKey, theme) }
