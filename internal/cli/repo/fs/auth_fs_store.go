package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AuthFSStore — файловое хранилище токена и текущего владельца для CLI.
// Владелец лежит рядом с токеном в файле с суффиксом .owner.
type AuthFSStore struct {
	Path string
}

func NewAuthFSStore(path string) AuthFSStore {
	return AuthFSStore{Path: path}
}

func (s AuthFSStore) ownerPath() string {
	return s.Path + ".owner"
}

// Save сохраняет auth‑токен в файл.
func (s AuthFSStore) Save(token string) error {
	return writePrivate(s.Path, token)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) {
	tok, err := readTrimmed(s.Path)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}

// SaveOwner запоминает владельца, от имени которого выдан токен.
func (s AuthFSStore) SaveOwner(owner string) error {
	if owner == "" {
		return errors.New("empty owner")
	}
	return writePrivate(s.ownerPath(), owner)
}

// LoadOwner читает текущего владельца.
func (s AuthFSStore) LoadOwner() (string, error) {
	owner, err := readTrimmed(s.ownerPath())
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", errors.New("no stored owner")
	}
	return owner, nil
}

// Clear удаляет токен и владельца.
func (s AuthFSStore) Clear() error {
	for _, p := range []string{s.Path, s.ownerPath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

func writePrivate(path, value string) error {
	if path == "" {
		return errors.New("empty token file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(value), 0o600)
}

func readTrimmed(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty token file path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	return strings.TrimRight(string(b), "\r\n\t "), nil
}
