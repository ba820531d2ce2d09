// Package localstore provides the embedded key-value store backing all
// persisted records. Each logical record family lives in its own bucket
// and every value is a JSON document.
package localstore

import (
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"kopikita/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Bucket names for the logical record families.
const (
	BucketOrders        = "orders"
	BucketFavorites     = "favorites"
	BucketNotifications = "notifications"
	BucketProfile       = "profile"
)

// DefaultOpenTimeout bounds how long Open waits on the file lock.
const DefaultOpenTimeout = 3 * time.Second

type Config struct {
	Path     string
	Timeout  time.Duration
	FileMode uint32
}

// DefaultConfig returns a store configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "kopikita.db",
		Timeout:  DefaultOpenTimeout,
		FileMode: 0o600,
	}
}

// Store wraps a bbolt database with JSON record helpers.
type Store struct {
	db     *bolt.DB
	path   string
	logger *logger.Logger
}

// Open opens (creating if needed) the store file and ensures all buckets
// exist.
func Open(config Config, log *logger.Logger) (*Store, error) {
	log.Info("Opening local store", "path", config.Path)

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultOpenTimeout
	}
	mode := config.FileMode
	if mode == 0 {
		mode = 0o600
	}

	db, err := bolt.Open(config.Path, os.FileMode(mode), &bolt.Options{Timeout: timeout})
	if err != nil {
		log.Error("Failed to open local store", "path", config.Path, "error", err)
		return nil, fmt.Errorf("failed to open local store: %v", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketOrders, BucketFavorites, BucketNotifications, BucketProfile} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		log.Error("Failed to initialize store buckets", "error", err)
		return nil, err
	}

	log.Info("Local store opened successfully", "path", config.Path)
	return &Store{db: db, path: config.Path, logger: log}, nil
}

// Put serializes value as JSON and stores it under bucket/key.
func (s *Store) Put(bucket, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Failed to encode record", "bucket", bucket, "key", key, "error", err)
		return fmt.Errorf("failed to encode record: %v", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", bucket)
		}
		return b.Put([]byte(key), data)
	})
}

// Get loads the record at bucket/key into out. The boolean is false when
// the key is absent. A record that cannot be decoded is reported as an
// error so callers can fall back to a default value instead of failing.
func (s *Store) Get(bucket, key string, out interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", bucket)
		}
		if data := b.Get([]byte(key)); data != nil {
			raw = make([]byte, len(data))
			copy(raw, data)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("Malformed record in store", "bucket", bucket, "key", key, "error", err)
		return false, fmt.Errorf("malformed record %s/%s: %v", bucket, key, err)
	}
	return true, nil
}

// Delete removes the record at bucket/key. Deleting an absent key is a
// no-op.
func (s *Store) Delete(bucket, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", bucket)
		}
		return b.Delete([]byte(key))
	})
}

// ForEach visits every record in the bucket in key order.
func (s *Store) ForEach(bucket string, fn func(key string, value []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", bucket)
		}
		return b.ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

// Decode unmarshals a raw record, shared by repositories iterating with
// ForEach.
func Decode(data []byte, out interface{}) error {
	return json.Unmarshal(data, out)
}

// HealthCheck verifies the store file is readable and all buckets exist.
func (s *Store) HealthCheck() error {
	s.logger.Debug("Performing store health check")

	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketOrders, BucketFavorites, BucketNotifications, BucketProfile} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %s missing", name)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Store health check failed", "error", err)
		return fmt.Errorf("store health check failed: %v", err)
	}

	s.logger.Debug("Store health check passed")
	return nil
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	s.logger.Info("Closing local store", "path", s.path)
	return s.db.Close()
}
