package account

import (
	"github.com/okx/testtube/types"
)

const (
	// DefaultGasPrice is the gas price of accounts created without an
	// explicit fee setting, in the fee denom.
	DefaultGasPrice = "0.0025"
	// DefaultGasAdjustment scales simulated gas into the gas limit.
	DefaultGasAdjustment = 1.2
)

// FeeSetting decides how the fee of a tx signed by an account is formed.
type FeeSetting interface {
	isFeeSetting()
}

// AutoFee simulates the tx first: the gas limit is the simulated gas
// scaled by GasAdjustment and the fee is the limit priced at GasPrice.
type AutoFee struct {
	GasPrice      types.DecCoin
	GasAdjustment float64
}

// CustomFee pays a fixed amount for a fixed gas limit.
type CustomFee struct {
	Amount   types.Coins
	GasLimit uint64
}

func (AutoFee) isFeeSetting()   {}
func (CustomFee) isFeeSetting() {}

// DefaultFeeSetting is auto fee at the default price in denom.
func DefaultFeeSetting(denom string) AutoFee {
	return AutoFee{
		GasPrice:      types.DecCoin{Denom: denom, Amount: DefaultGasPrice},
		GasAdjustment: DefaultGasAdjustment,
	}
}
