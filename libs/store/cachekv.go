package store

import (
	"bytes"
	"sort"
	"sync"
)

type cValue struct {
	value []byte
	dirty bool
}

type cacheKVStore struct {
	mtx    sync.Mutex
	cache  map[string]*cValue
	parent KVStore
}

var _ CacheKVStore = (*cacheKVStore)(nil)

// NewCacheKVStore returns a write buffer over parent. Reads fall through
// to parent; writes stay local until Write.
func NewCacheKVStore(parent KVStore) CacheKVStore {
	return &cacheKVStore{
		cache:  make(map[string]*cValue),
		parent: parent,
	}
}

func (store *cacheKVStore) Get(key []byte) []byte {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	assertValidKey(key)

	cv, ok := store.cache[string(key)]
	if ok {
		return cv.value
	}
	value := store.parent.Get(key)
	store.cache[string(key)] = &cValue{value: value}
	return value
}

func (store *cacheKVStore) Has(key []byte) bool {
	return store.Get(key) != nil
}

func (store *cacheKVStore) Set(key, value []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	assertValidKey(key)
	assertValidValue(value)

	store.cache[string(key)] = &cValue{value: value, dirty: true}
}

func (store *cacheKVStore) Delete(key []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	assertValidKey(key)

	store.cache[string(key)] = &cValue{dirty: true}
}

// Write flushes dirty entries to the parent in key order and resets the
// cache.
func (store *cacheKVStore) Write() {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	keys := make([]string, 0, len(store.cache))
	for k, cv := range store.cache {
		if cv.dirty {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if db, ok := store.parent.(*DBStore); ok {
		sets := make(map[string][]byte, len(keys))
		for _, k := range keys {
			sets[k] = store.cache[k].value
		}
		if err := db.WriteBatch(sets); err != nil {
			panic(err)
		}
	} else {
		for _, k := range keys {
			cv := store.cache[k]
			if cv.value == nil {
				store.parent.Delete([]byte(k))
			} else {
				store.parent.Set([]byte(k), cv.value)
			}
		}
	}

	store.cache = make(map[string]*cValue)
}

func (store *cacheKVStore) Iterator(start, end []byte) Iterator {
	return store.iterator(start, end, true)
}

func (store *cacheKVStore) ReverseIterator(start, end []byte) Iterator {
	return store.iterator(start, end, false)
}

// iterator snapshots the merged view of parent and cache. The parent
// iterator is closed before returning so no parent lock outlives the call.
func (store *cacheKVStore) iterator(start, end []byte, ascending bool) Iterator {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	merged := make(map[string][]byte)
	parent := store.parent.Iterator(start, end)
	for ; parent.Valid(); parent.Next() {
		merged[string(parent.Key())] = parent.Value()
	}
	parent.Close()

	for k, cv := range store.cache {
		if !cv.dirty || !inDomain([]byte(k), start, end) {
			continue
		}
		if cv.value == nil {
			delete(merged, k)
		} else {
			merged[k] = cv.value
		}
	}
	return newMemIterator(start, end, merged, ascending)
}

func inDomain(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

type memIterator struct {
	start, end []byte
	keys       []string
	values     map[string][]byte
	pos        int
}

func newMemIterator(start, end []byte, items map[string][]byte, ascending bool) *memIterator {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	if ascending {
		sort.Strings(keys)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}
	return &memIterator{start: start, end: end, keys: keys, values: items}
}

func (mi *memIterator) Domain() ([]byte, []byte) { return mi.start, mi.end }

func (mi *memIterator) Valid() bool { return mi.pos < len(mi.keys) }

func (mi *memIterator) assertValid() {
	if !mi.Valid() {
		panic("iterator is invalid")
	}
}

func (mi *memIterator) Next() {
	mi.assertValid()
	mi.pos++
}

func (mi *memIterator) Key() []byte {
	mi.assertValid()
	return []byte(mi.keys[mi.pos])
}

func (mi *memIterator) Value() []byte {
	mi.assertValid()
	return mi.values[mi.keys[mi.pos]]
}

func (mi *memIterator) Error() error { return nil }

func (mi *memIterator) Close() error {
	mi.keys = nil
	return nil
}
