// Package jsonfile stores the credential document as a single JSON file.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iudanet/campusauth/internal/models"
	"github.com/iudanet/campusauth/internal/storage"
)

const filePerm = 0o600

// Storage represents JSON file storage implementation
type Storage struct {
	path   string
	mu     sync.Mutex
	closed bool
}

// New creates a new JSON file storage
// path is the path to the document file, its directory is created if missing
func New(ctx context.Context, path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("document path cannot be empty")
	}

	// Создаем директорию для файла
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &Storage{path: path}, nil
}

// Load reads the document file
func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		// Файла нет - первый запуск, пустой документ
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return storage.Decode(data)
}

// Save atomically replaces the document file
func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	data, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	// Пишем во временный файл и переименовываем поверх исходного
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// После успешного rename файла уже нет, ошибку игнорируем
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set document permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}

	return nil
}

// Close marks storage as closed
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
