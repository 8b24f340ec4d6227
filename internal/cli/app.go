package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/campusauth/internal/config"
	"github.com/iudanet/campusauth/internal/credstore"
	"github.com/iudanet/campusauth/internal/crypto"
	"github.com/iudanet/campusauth/internal/storage"
	"github.com/iudanet/campusauth/internal/storage/boltdb"
	"github.com/iudanet/campusauth/internal/storage/jsonfile"
	"github.com/iudanet/campusauth/internal/storage/sqlite"
)

// OpenFunc opens the credential store described by cfg. The returned closer
// releases the underlying storage.
type OpenFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Credentials, io.Closer, error)

// OpenStore opens the configured storage backend and builds a credential store on it.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Credentials, io.Closer, error) {
	docs, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	hasher, err := crypto.NewHasher(cfg.HashParams(), nil)
	if err != nil {
		_ = docs.Close()
		return nil, nil, fmt.Errorf("failed to create hasher: %w", err)
	}

	store, err := credstore.New(docs,
		credstore.WithLogger(logger),
		credstore.WithHasher(hasher),
		credstore.WithTokenTTL(cfg.Security.TokenTTL),
		credstore.WithTokenLength(cfg.Security.TokenLength),
	)
	if err != nil {
		_ = docs.Close()
		return nil, nil, fmt.Errorf("failed to create credential store: %w", err)
	}

	logger.DebugContext(ctx, "credential store opened",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("path", cfg.Storage.Path))

	return store, docs, nil
}

// OpenStorage opens the document storage for the configured backend.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (storage.DocumentStorage, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		s, err := jsonfile.New(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendBolt:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		s, err := boltdb.New(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		s, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// ensureDir создает каталог для файла базы данных
func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
