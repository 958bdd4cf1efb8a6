package types

import (
	"encoding/binary"

	"github.com/okx/testtube/libs/store"
)

// Uint64ToBigEndian encodes n as 8 big-endian bytes. Keys built with it
// sort numerically.
func Uint64ToBigEndian(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

// BigEndianToUint64 decodes 8 big-endian bytes, zero for any other length.
func BigEndianToUint64(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// PrefixEnd returns the exclusive upper bound of keys starting with prefix.
func PrefixEnd(prefix []byte) []byte {
	return store.PrefixEndBytes(prefix)
}
