package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the dex module.
	ModuleName = "dex"

	// StoreKey is the store key of the dex module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of dex query routes.
	QueryPath = "/neutron.dex.Query/"

	TypeURLMsgDeposit                  = "/neutron.dex.MsgDeposit"
	TypeURLMsgWithdrawal               = "/neutron.dex.MsgWithdrawal"
	TypeURLMsgPlaceLimitOrder          = "/neutron.dex.MsgPlaceLimitOrder"
	TypeURLMsgWithdrawFilledLimitOrder = "/neutron.dex.MsgWithdrawFilledLimitOrder"
	TypeURLMsgCancelLimitOrder         = "/neutron.dex.MsgCancelLimitOrder"
	TypeURLMsgMultiHopSwap             = "/neutron.dex.MsgMultiHopSwap"
	TypeURLMsgUpdateParams             = "/neutron.dex.MsgUpdateParams"

	// ParamsTypeURL identifies dex params in the params registry.
	ParamsTypeURL = "/neutron.dex.Params"

	// PoolDenomPrefix prefixes the denom of pool shares.
	PoolDenomPrefix = "neutron/pool/"
)

var (
	PoolKeyPrefix                      = []byte{0x01}
	PoolIDKeyPrefix                    = []byte{0x02}
	PoolCountKey                       = []byte{0x03}
	LimitOrderTrancheKeyPrefix         = []byte{0x04}
	InactiveLimitOrderTrancheKeyPrefix = []byte{0x05}
	LimitOrderTrancheUserKeyPrefix     = []byte{0x06}
	TrancheCountKey                    = []byte{0x07}
	ParamsKey                          = []byte{0x08}
	JITsInBlockKey                     = []byte{0x09}
)

// TickIndexToBytes encodes tick so that byte order matches numeric order.
func TickIndexToBytes(tick int64) []byte {
	return sdk.Uint64ToBigEndian(uint64(tick) ^ (1 << 63))
}

func BytesToTickIndex(bz []byte) int64 {
	return int64(sdk.BigEndianToUint64(bz) ^ (1 << 63))
}

func lengthPrefixed(s string) []byte {
	return append([]byte{byte(len(s))}, []byte(s)...)
}

// PoolPairPrefix returns the key prefix of the pools of pairID.
func PoolPairPrefix(pairID PairID) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), lengthPrefixed(pairID.String())...)
}

// PoolKey returns the key of the pool of pairID at centerTick and fee.
func PoolKey(pairID PairID, centerTick int64, fee uint64) []byte {
	key := append(PoolPairPrefix(pairID), TickIndexToBytes(centerTick)...)
	return append(key, sdk.Uint64ToBigEndian(fee)...)
}

func PoolIDKey(id uint64) []byte {
	return append(append([]byte{}, PoolIDKeyPrefix...), sdk.Uint64ToBigEndian(id)...)
}

// TrancheTradePairPrefix returns the key prefix of the tranches of
// tradePairID under base.
func TrancheTradePairPrefix(base []byte, tradePairID TradePairID) []byte {
	return append(append([]byte{}, base...), lengthPrefixed(tradePairID.String())...)
}

// TrancheKey returns the key of one tranche under base.
func TrancheKey(base []byte, key LimitOrderTrancheKey) []byte {
	bz := append(TrancheTradePairPrefix(base, key.TradePairId), TickIndexToBytes(key.TickIndexTakerToMaker)...)
	return append(bz, []byte(key.TrancheKey)...)
}

// TrancheUserAddressPrefix returns the key prefix of the orders of address.
func TrancheUserAddressPrefix(address string) []byte {
	return append(append([]byte{}, LimitOrderTrancheUserKeyPrefix...), lengthPrefixed(address)...)
}

func TrancheUserKey(address, trancheKey string) []byte {
	return append(TrancheUserAddressPrefix(address), []byte(trancheKey)...)
}
