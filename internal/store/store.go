// Package store persists portfolios in a local bbolt database so a portfolio
// can be edited across runs without re-supplying the YAML file every time.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
)

var (
	bucketAssets   = []byte("assets")
	bucketSettings = []byte("settings")

	settingsKey = []byte("portfolio")
)

// Store is a bbolt-backed portfolio database. It is safe for concurrent use;
// bbolt serializes writers internally.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAssets); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketSettings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAsset inserts or replaces one asset, keyed by its id.
func (s *Store) SaveAsset(a domain.Asset) error {
	if a.ID() == "" {
		return fmt.Errorf("asset has no id")
	}
	data, err := domain.MarshalAsset(a)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAssets).Put([]byte(a.ID()), data)
	})
}

// LoadAsset loads one asset by id; a missing id returns (nil, nil).
func (s *Store) LoadAsset(id string) (domain.Asset, error) {
	var asset domain.Asset
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketAssets).Get([]byte(id))
		if data == nil {
			return nil
		}
		a, err := domain.UnmarshalAsset(data)
		if err != nil {
			return err
		}
		asset = a
		return nil
	})
	return asset, err
}

// LoadAssets loads every stored asset in key order.
func (s *Store) LoadAssets() ([]domain.Asset, error) {
	var assets []domain.Asset
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAssets).ForEach(func(k, v []byte) error {
			a, err := domain.UnmarshalAsset(v)
			if err != nil {
				return fmt.Errorf("asset %s: %w", k, err)
			}
			assets = append(assets, a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// DeleteAsset removes one asset. Deleting a missing id is not an error.
func (s *Store) DeleteAsset(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAssets).Delete([]byte(id))
	})
}

// SaveSettings stores the portfolio-wide settings.
func (s *Store) SaveSettings(settings domain.PortfolioSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put(settingsKey, data)
	})
}

// LoadSettings returns the stored settings, or the defaults when none were
// saved yet.
func (s *Store) LoadSettings() (domain.PortfolioSettings, error) {
	settings := domain.DefaultSettings()
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSettings).Get(settingsKey)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &settings)
	})
	if err != nil {
		return domain.PortfolioSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings.Normalized(), nil
}
