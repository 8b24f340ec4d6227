// Package sqlite stores the credential document in a single-row SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/campusauth/internal/models"
	"github.com/iudanet/campusauth/internal/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// documentID - единственная строка таблицы documents
const documentID = 1

// Storage represents SQLite storage implementation
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Один писатель; для :memory: это еще и единственная база
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	storage := &Storage{db: db}

	// Запускаем миграции
	if err := storage.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (s *Storage) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// Load retrieves the stored document
func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	query := `SELECT body FROM documents WHERE id = ?`

	var body string
	err := s.db.QueryRowContext(ctx, query, documentID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Документ еще не сохранялся
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return storage.Decode([]byte(body))
}

// Save replaces the stored document
func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	data, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (id, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, documentID, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
