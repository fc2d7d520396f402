// Package store persists game snapshots so a server restart does not lose
// games in progress.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"fogchess/internal/model"
)

const gamePrefix = "game:"

// Store wraps BadgerDB for persistent game snapshots, keyed by game ID with
// JSON values.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame writes the snapshot for gameID, replacing any previous one.
func (s *Store) SaveGame(gameID string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+gameID), data)
	})
}

// LoadGame reads the snapshot for gameID. The second return value is false
// when no snapshot exists.
func (s *Store) LoadGame(gameID string) (model.Snapshot, bool, error) {
	var snap model.Snapshot
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + gameID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return snap, found, err
}

// DeleteGame removes the snapshot for gameID, if present.
func (s *Store) DeleteGame(gameID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + gameID))
	})
}

// GameIDs lists every game ID with a stored snapshot.
func (s *Store) GameIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return ids, err
}
