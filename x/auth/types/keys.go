package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the auth module.
	ModuleName = "auth"

	// StoreKey is the store key of the auth module.
	StoreKey = sdk.StoreKey("acc")

	// FeeCollectorName is the module account that receives tx fees.
	FeeCollectorName = "fee_collector"

	// QueryPath is the prefix of auth query routes.
	QueryPath = "/cosmos.auth.v1beta1.Query/"
)

var (
	AddressStoreKeyPrefix  = []byte{0x01}
	ModuleAccountKeyPrefix = []byte{0x02}
	GlobalAccountNumberKey = []byte("globalAccountNumber")
	ParamsKey              = []byte("params")
)

// AddressStoreKey is the store key of the account at addr.
func AddressStoreKey(addr string) []byte {
	return append(append([]byte{}, AddressStoreKeyPrefix...), []byte(addr)...)
}

// ModuleAccountStoreKey is the store key of the module account name.
func ModuleAccountStoreKey(name string) []byte {
	return append(append([]byte{}, ModuleAccountKeyPrefix...), []byte(name)...)
}
