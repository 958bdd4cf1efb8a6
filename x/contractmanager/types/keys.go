package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the contractmanager module.
	ModuleName = "contractmanager"

	// StoreKey is the store key of the contractmanager module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of contractmanager query routes.
	QueryPath = "/neutron.contractmanager.Query/"

	TypeURLMsgUpdateParams = "/neutron.contractmanager.MsgUpdateParams"

	// ParamsTypeURL identifies contractmanager params in the params registry.
	ParamsTypeURL = "/neutron.contractmanager.Params"
)

var (
	ContractFailuresKey = []byte{0x01}
	ParamsKey           = []byte{0x02}
	FailureCountKey     = []byte{0x03}
)

// GetFailureKeyPrefix returns the key prefix of the failures of address.
func GetFailureKeyPrefix(address string) []byte {
	return append(append(append([]byte{}, ContractFailuresKey...), []byte(address)...), '/')
}

// GetFailureKey returns the key of one failure of address.
func GetFailureKey(address string, id uint64) []byte {
	return append(GetFailureKeyPrefix(address), sdk.Uint64ToBigEndian(id)...)
}

func GetFailureCountKey(address string) []byte {
	return append(append([]byte{}, FailureCountKey...), []byte(address)...)
}
