package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the oracle module.
	ModuleName = "oracle"

	// StoreKey is the store key of the oracle module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of oracle query routes.
	QueryPath = "/slinky.oracle.v1.Query/"
)

var (
	CurrencyPairKeyPrefix   = []byte{0x01}
	CurrencyPairIDKeyPrefix = []byte{0x02}
	UniqueIDKey             = []byte{0x03}
)

// GetCurrencyPairKey returns the state key of cp.
func GetCurrencyPairKey(cp CurrencyPair) []byte {
	return append(append([]byte{}, CurrencyPairKeyPrefix...), []byte(cp.String())...)
}

// GetCurrencyPairIDKey returns the key mapping id to its currency pair.
func GetCurrencyPairIDKey(id uint64) []byte {
	return append(append([]byte{}, CurrencyPairIDKeyPrefix...), sdk.Uint64ToBigEndian(id)...)
}
