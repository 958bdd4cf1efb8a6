package types

import (
	"fmt"
)

// BaseAccount is an account known to the chain.
type BaseAccount struct {
	Address       string `json:"address"`
	PubKey        []byte `json:"pub_key"`
	AccountNumber uint64 `json:"account_number"`
	Sequence      uint64 `json:"sequence"`
}

// ModuleAccount is an account owned by a module. It has no key.
type ModuleAccount struct {
	BaseAccount BaseAccount `json:"base_account"`
	Name        string      `json:"name"`
	Permissions []string    `json:"permissions"`
}

const (
	Minter = "minter"
	Burner = "burner"
)

// HasPermission reports whether the module account holds permission.
func (ma ModuleAccount) HasPermission(permission string) bool {
	for _, p := range ma.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (acc BaseAccount) String() string {
	return fmt.Sprintf("BaseAccount{%s number=%d sequence=%d}", acc.Address, acc.AccountNumber, acc.Sequence)
}

// Params defines the tx gas prices charged by the ante handler.
type Params struct {
	MaxMemoCharacters      uint64 `json:"max_memo_characters"`
	TxSizeCostPerByte      uint64 `json:"tx_size_cost_per_byte"`
	SigVerifyCostSecp256k1 uint64 `json:"sig_verify_cost_secp256k1"`
}

// DefaultParams returns the default auth params.
func DefaultParams() Params {
	return Params{
		MaxMemoCharacters:      256,
		TxSizeCostPerByte:      10,
		SigVerifyCostSecp256k1: 1000,
	}
}

// Validate checks params.
func (p Params) Validate() error {
	if p.TxSizeCostPerByte == 0 {
		return fmt.Errorf("invalid tx size cost per byte: %d", p.TxSizeCostPerByte)
	}
	if p.SigVerifyCostSecp256k1 == 0 {
		return fmt.Errorf("invalid secp256k1 signature verification cost: %d", p.SigVerifyCostSecp256k1)
	}
	return nil
}

// ParamsTypeURL identifies auth params in the params registry.
const ParamsTypeURL = "/cosmos.auth.v1beta1.Params"
