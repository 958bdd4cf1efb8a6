package types

import (
	"fmt"
	"math/big"

	sdk "github.com/okx/testtube/types"
)

// BondStatus is the bonding state of a validator.
type BondStatus int32

const (
	Unspecified BondStatus = 0
	Unbonded    BondStatus = 1
	Unbonding   BondStatus = 2
	Bonded      BondStatus = 3
)

var bondStatusNames = map[BondStatus]string{
	Unspecified: "BOND_STATUS_UNSPECIFIED",
	Unbonded:    "BOND_STATUS_UNBONDED",
	Unbonding:   "BOND_STATUS_UNBONDING",
	Bonded:      "BOND_STATUS_BONDED",
}

func (s BondStatus) String() string {
	if name, ok := bondStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BondStatus(%d)", int32(s))
}

// ParseBondStatus accepts the enum names used by query filters.
func ParseBondStatus(s string) (BondStatus, error) {
	for status, name := range bondStatusNames {
		if name == s {
			return status, nil
		}
	}
	return Unspecified, fmt.Errorf("invalid validator status %s", s)
}

type Description struct {
	Moniker  string `json:"moniker"`
	Identity string `json:"identity"`
	Website  string `json:"website"`
	Details  string `json:"details"`
}

// Validator is a bonded block producer. Tokens is a base-10 integer.
type Validator struct {
	OperatorAddress string      `json:"operator_address"`
	AccountAddress  string      `json:"account_address"`
	ConsensusPubKey []byte      `json:"consensus_pubkey"`
	Jailed          bool        `json:"jailed"`
	Status          BondStatus  `json:"status"`
	Tokens          string      `json:"tokens"`
	DelegatorShares string      `json:"delegator_shares"`
	Description     Description `json:"description"`
}

func (v Validator) IsBonded() bool { return v.Status == Bonded && !v.Jailed }

// BondedTokens returns the tokens of a bonded validator, zero otherwise.
func (v Validator) BondedTokens() *big.Int {
	if !v.IsBonded() {
		return new(big.Int)
	}
	return sdk.Coin{Amount: v.Tokens}.AmountOf()
}

// Params of the staking module.
type Params struct {
	BondDenom     string `json:"bond_denom"`
	MaxValidators uint32 `json:"max_validators"`
	UnbondingTime int64  `json:"unbonding_time"`
}

func DefaultParams(bondDenom string) Params {
	return Params{BondDenom: bondDenom, MaxValidators: 100, UnbondingTime: 21 * 24 * 3600}
}

func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BondDenom); err != nil {
		return err
	}
	if p.MaxValidators == 0 {
		return fmt.Errorf("max validators must be positive")
	}
	return nil
}
