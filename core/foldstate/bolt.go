package foldstate

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketName = "foldstate"

// Bolt is a bbolt-backed Store: flags survive editor restarts.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the fold-state database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open fold-state database: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, txErr := tx.CreateBucketIfNotExists([]byte(bucketName))
		return txErr
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create fold-state bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Get returns the stored flag, defaulting to closed. Read failures degrade to
// closed; fold state is cosmetic.
func (s *Bolt) Get(key string) bool {
	var open bool

	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); len(v) == 1 {
			open = v[0] == 1
		}
		return nil
	})

	return open
}

// Set writes the flag immediately.
func (s *Bolt) Set(key string, open bool) {
	value := byte(0)
	if open {
		value = 1
	}

	_ = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte{value})
	})
}

// Close releases the underlying database.
func (s *Bolt) Close() error {
	return s.db.Close()
}
