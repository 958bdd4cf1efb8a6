package store

import (
	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"
)

// DBStore exposes a tm-db database as a KVStore. Database failures are
// not recoverable for the simulator and panic.
type DBStore struct {
	db dbm.DB
}

var _ KVStore = (*DBStore)(nil)

// NewDBStore wraps db.
func NewDBStore(db dbm.DB) *DBStore {
	return &DBStore{db: db}
}

// NewMemDBStore is a DBStore backed by a fresh in-memory database.
func NewMemDBStore() *DBStore {
	return NewDBStore(dbm.NewMemDB())
}

func (s *DBStore) Get(key []byte) []byte {
	assertValidKey(key)
	v, err := s.db.Get(key)
	if err != nil {
		panic(errors.Wrap(err, "db get"))
	}
	return v
}

func (s *DBStore) Has(key []byte) bool {
	assertValidKey(key)
	ok, err := s.db.Has(key)
	if err != nil {
		panic(errors.Wrap(err, "db has"))
	}
	return ok
}

func (s *DBStore) Set(key, value []byte) {
	assertValidKey(key)
	assertValidValue(value)
	if err := s.db.Set(key, value); err != nil {
		panic(errors.Wrap(err, "db set"))
	}
}

func (s *DBStore) Delete(key []byte) {
	assertValidKey(key)
	if err := s.db.Delete(key); err != nil {
		panic(errors.Wrap(err, "db delete"))
	}
}

func (s *DBStore) Iterator(start, end []byte) Iterator {
	iter, err := s.db.Iterator(start, end)
	if err != nil {
		panic(errors.Wrap(err, "db iterator"))
	}
	return iter
}

func (s *DBStore) ReverseIterator(start, end []byte) Iterator {
	iter, err := s.db.ReverseIterator(start, end)
	if err != nil {
		panic(errors.Wrap(err, "db reverse iterator"))
	}
	return iter
}

// WriteBatch applies sets and deletes in one batch. A nil value in sets
// deletes the key.
func (s *DBStore) WriteBatch(sets map[string][]byte) error {
	batch := s.db.NewBatch()
	defer batch.Close()
	for k, v := range sets {
		if v == nil {
			batch.Delete([]byte(k))
			continue
		}
		batch.Set([]byte(k), v)
	}
	return errors.Wrap(batch.Write(), "db batch write")
}

// Stats reports the backing database statistics.
func (s *DBStore) Stats() map[string]string {
	return s.db.Stats()
}
