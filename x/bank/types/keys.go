package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the bank module.
	ModuleName = "bank"

	// StoreKey is the store key of the bank module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of bank query routes.
	QueryPath = "/cosmos.bank.v1beta1.Query/"

	TypeURLMsgSend         = "/cosmos.bank.v1beta1.MsgSend"
	TypeURLMsgUpdateParams = "/cosmos.bank.v1beta1.MsgUpdateParams"

	// ParamsTypeURL identifies bank params in the params registry.
	ParamsTypeURL = "/cosmos.bank.v1beta1.Params"
)

var (
	SupplyKey           = []byte{0x00}
	DenomMetadataPrefix = []byte{0x01}
	BalancesPrefix      = []byte{0x02}
	ParamsKey           = []byte{0x05}
)

// AddressBalanceKey is the key of the balances of addr.
func AddressBalanceKey(addr string) []byte {
	return append(append([]byte{}, BalancesPrefix...), []byte(addr)...)
}

// SupplyStoreKey is the key of the supply of denom.
func SupplyStoreKey(denom string) []byte {
	return append(append([]byte{}, SupplyKey...), []byte(denom)...)
}

// DenomMetadataKey is the key of the metadata of denom.
func DenomMetadataKey(denom string) []byte {
	return append(append([]byte{}, DenomMetadataPrefix...), []byte(denom)...)
}
