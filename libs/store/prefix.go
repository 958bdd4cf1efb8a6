package store

type prefixStore struct {
	parent KVStore
	prefix []byte
}

var _ KVStore = prefixStore{}

// NewPrefixStore scopes parent to keys under prefix.
func NewPrefixStore(parent KVStore, prefix []byte) KVStore {
	return prefixStore{parent: parent, prefix: prefix}
}

func cloneAppend(bz []byte, tail []byte) []byte {
	res := make([]byte, len(bz)+len(tail))
	copy(res, bz)
	copy(res[len(bz):], tail)
	return res
}

func (s prefixStore) key(key []byte) []byte {
	assertValidKey(key)
	return cloneAppend(s.prefix, key)
}

func (s prefixStore) Get(key []byte) []byte { return s.parent.Get(s.key(key)) }

func (s prefixStore) Has(key []byte) bool { return s.parent.Has(s.key(key)) }

func (s prefixStore) Set(key, value []byte) { s.parent.Set(s.key(key), value) }

func (s prefixStore) Delete(key []byte) { s.parent.Delete(s.key(key)) }

func (s prefixStore) bounds(start, end []byte) ([]byte, []byte) {
	newstart := cloneAppend(s.prefix, start)
	var newend []byte
	if end == nil {
		newend = PrefixEndBytes(s.prefix)
	} else {
		newend = cloneAppend(s.prefix, end)
	}
	return newstart, newend
}

func (s prefixStore) Iterator(start, end []byte) Iterator {
	newstart, newend := s.bounds(start, end)
	return newPrefixIterator(s.prefix, start, end, s.parent.Iterator(newstart, newend))
}

func (s prefixStore) ReverseIterator(start, end []byte) Iterator {
	newstart, newend := s.bounds(start, end)
	return newPrefixIterator(s.prefix, start, end, s.parent.ReverseIterator(newstart, newend))
}

type prefixIterator struct {
	prefix     []byte
	start, end []byte
	iter       Iterator
}

func newPrefixIterator(prefix, start, end []byte, parent Iterator) *prefixIterator {
	return &prefixIterator{prefix: prefix, start: start, end: end, iter: parent}
}

func (pi *prefixIterator) Domain() ([]byte, []byte) { return pi.start, pi.end }
func (pi *prefixIterator) Valid() bool              { return pi.iter.Valid() }
func (pi *prefixIterator) Next()                    { pi.iter.Next() }
func (pi *prefixIterator) Key() []byte              { return pi.iter.Key()[len(pi.prefix):] }
func (pi *prefixIterator) Value() []byte            { return pi.iter.Value() }
func (pi *prefixIterator) Error() error             { return pi.iter.Error() }
func (pi *prefixIterator) Close() error             { return pi.iter.Close() }

// PrefixEndBytes returns the smallest key greater than every key with the
// given prefix, or nil when no such key exists.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		}
		end = end[:len(end)-1]
		if len(end) == 0 {
			return nil
		}
	}
	return end
}
