// Package boltdb stores the credential document in a BoltDB file.
package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/campusauth/internal/models"
	"github.com/iudanet/campusauth/internal/storage"
)

var (
	// BoltDB bucket and key names
	bucketCredentials = []byte("credentials")
	documentKey       = []byte("document")
)

// openTimeout bounds waiting for the file lock held by another process.
const openTimeout = 5 * time.Second

// Storage represents BoltDB storage implementation
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCredentials); err != nil {
			return fmt.Errorf("failed to create credentials bucket: %w", err)
		}
		return nil
	})
}

// Load retrieves the stored document
func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(documentKey)
		if data == nil {
			// Документ еще не сохранялся
			doc = models.NewDocument()
			return nil
		}

		// Данные валидны только внутри транзакции, декодируем здесь
		decoded, err := storage.Decode(data)
		if err != nil {
			return err
		}
		doc = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Save replaces the stored document
func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	data, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Put(documentKey, data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		return nil
	})
}
