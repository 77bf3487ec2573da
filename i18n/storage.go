package i18n

import (
	"os"
	"strings"
)

// Storage persists the process-wide locale across restarts.
type Storage interface {
	Load() (string, error)
	Save(locale string) error
}

// FileStorage keeps the locale in a small state file.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) FileStorage {
	return FileStorage{Path: path}
}

func (s FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s FileStorage) Save(locale string) error {
	return os.WriteFile(s.Path, []byte(locale+"\n"), 0o644)
}
