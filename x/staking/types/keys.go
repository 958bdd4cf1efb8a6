package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the staking module.
	ModuleName = "staking"

	// StoreKey is the store key of the staking module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of staking query routes.
	QueryPath = "/cosmos.staking.v1beta1.Query/"

	// BondedPoolName holds the tokens bonded by validators.
	BondedPoolName = "bonded_tokens_pool"

	// ParamsTypeURL identifies staking params in the params registry.
	ParamsTypeURL = "/cosmos.staking.v1beta1.Params"
)

var (
	ValidatorsKey          = []byte{0x21}
	ValidatorsByAccountKey = []byte{0x22}
	ParamsKey              = []byte{0x51}
)

// GetValidatorKey is the key of the validator with operator address addr.
func GetValidatorKey(operator string) []byte {
	return append(append([]byte{}, ValidatorsKey...), []byte(operator)...)
}

// GetValidatorByAccountKey indexes validators by their account address.
func GetValidatorByAccountKey(account string) []byte {
	return append(append([]byte{}, ValidatorsByAccountKey...), []byte(account)...)
}
