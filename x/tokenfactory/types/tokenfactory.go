package types

import (
	"fmt"

	sdk "github.com/okx/testtube/types"
)

// DenomAuthorityMetadata names the admin of a denom. An empty admin
// means nobody can mint or burn it.
type DenomAuthorityMetadata struct {
	Admin string `json:"admin"`
}

func (metadata DenomAuthorityMetadata) Validate() error {
	if metadata.Admin != "" {
		if err := sdk.ValidateAddress(metadata.Admin); err != nil {
			return err
		}
	}
	return nil
}

// Params of the tokenfactory module.
type Params struct {
	DenomCreationFee        sdk.Coins `json:"denom_creation_fee"`
	DenomCreationGasConsume uint64    `json:"denom_creation_gas_consume"`
	FeeCollectorAddress     string    `json:"fee_collector_address"`
}

func DefaultParams() Params {
	return Params{DenomCreationFee: sdk.Coins{}}
}

func (p Params) Validate() error {
	if err := p.DenomCreationFee.Validate(); err != nil {
		return fmt.Errorf("invalid denom creation fee: %w", err)
	}
	if p.FeeCollectorAddress != "" {
		if err := sdk.ValidateAddress(p.FeeCollectorAddress); err != nil {
			return fmt.Errorf("invalid fee collector address: %w", err)
		}
	}
	if len(p.DenomCreationFee) > 0 && p.FeeCollectorAddress == "" {
		return fmt.Errorf("fee collector address is required when the denom creation fee is set")
	}
	return nil
}
