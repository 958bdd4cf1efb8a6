package store

import (
	dbm "github.com/tendermint/tm-db"
)

// Iterator walks a key range in order. It is the tm-db iterator.
type Iterator = dbm.Iterator

// KVStore is the byte key/value view every keeper works on.
type KVStore interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Set(key, value []byte)
	Delete(key []byte)

	// Iterator over [start, end). A nil bound is open.
	Iterator(start, end []byte) Iterator
	ReverseIterator(start, end []byte) Iterator
}

// CacheKVStore buffers writes until Write flushes them to its parent.
type CacheKVStore interface {
	KVStore
	Write()
}

// CacheWrap branches store into a fresh CacheKVStore.
func CacheWrap(store KVStore) CacheKVStore {
	return NewCacheKVStore(store)
}

func assertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is nil or empty")
	}
}

func assertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}
