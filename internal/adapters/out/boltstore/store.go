// Package boltstore keeps ordering sessions in a single bbolt file. It suits
// a single instance that should keep order history across restarts without
// running a database server.
//
// Each session is one JSON value in the "sessions" bucket, keyed by the
// 16 bytes of its id. A UnitOfWork holds one read-write bbolt transaction,
// so writers are serialized by the file itself.
package boltstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const (
	sessionsBucket = "sessions"
	openTimeout    = time.Second
)

var errBucketMissing = errors.New("sessions bucket is missing")

// Store owns the bbolt database file.
type Store struct {
	db       *bbolt.DB
	location *time.Location
}

// Open opens or creates the database at path. Stored calendar days are
// restored as local midnight in location.
func Open(path string, location *time.Location) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if location == nil {
		location = time.UTC
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	store := &Store{db: db, location: location}
	if err = store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Len returns the number of stored sessions.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sessionsBucket))
		if b == nil {
			return errBucketMissing
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionsBucket)); err != nil {
			return fmt.Errorf("create sessions bucket: %w", err)
		}
		return nil
	})
}
