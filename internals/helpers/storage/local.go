package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage: file di <Root>/<Dir>/<name>, path relatif "<Dir>/<name>".
type LocalStorage struct {
	Root string
	Dir  string
}

func NewLocalStorage(root, dir string) *LocalStorage {
	if root == "" {
		root = "."
	}
	if dir == "" {
		dir = "pdfs"
	}
	return &LocalStorage{Root: root, Dir: strings.Trim(filepath.ToSlash(dir), "/")}
}

func (s *LocalStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	rel := path.Join(s.Dir, name)
	abs := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, rel)
		}
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(abs)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(abs)
		return "", err
	}
	return rel, nil
}

func (s *LocalStorage) Open(_ context.Context, relPath string) (io.ReadCloser, error) {
	abs, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, relPath)
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStorage) Remove(_ context.Context, relPath string) error {
	abs, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// resolve hanya mengizinkan file langsung di bawah Dir.
func (s *LocalStorage) resolve(relPath string) (string, error) {
	rel := path.Clean(filepath.ToSlash(strings.TrimSpace(relPath)))
	dir, name := path.Split(rel)
	if strings.Trim(dir, "/") != s.Dir {
		return "", fmt.Errorf("%w: %q", ErrBadPath, relPath)
	}
	if _, err := cleanName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(rel)), nil
}
