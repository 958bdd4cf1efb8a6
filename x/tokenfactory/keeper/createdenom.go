package keeper

import (
	sdk "github.com/okx/testtube/types"
	banktypes "github.com/okx/testtube/x/bank/types"
	"github.com/okx/testtube/x/tokenfactory/types"
)

// CreateDenom charges the creation fee and registers
// factory/{creator}/{subdenom} with creator as admin.
func (k Keeper) CreateDenom(ctx sdk.Context, creator, subdenom string) (string, error) {
	denom, err := k.validateCreateDenom(ctx, creator, subdenom)
	if err != nil {
		return "", err
	}
	if err := k.chargeForCreateDenom(ctx, creator); err != nil {
		return "", err
	}
	if err := k.createDenomAfterValidation(ctx, creator, denom); err != nil {
		return "", err
	}
	return denom, nil
}

func (k Keeper) createDenomAfterValidation(ctx sdk.Context, creator, denom string) error {
	k.bk.SetDenomMetaData(ctx, banktypes.Metadata{
		DenomUnits: []banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
		Base:       denom,
	})
	if err := k.setAuthorityMetadata(ctx, denom, types.DenomAuthorityMetadata{Admin: creator}); err != nil {
		return err
	}
	k.addDenomFromCreator(ctx, creator, denom)
	return nil
}

func (k Keeper) validateCreateDenom(ctx sdk.Context, creator, subdenom string) (string, error) {
	// Denoms that already have bank metadata cannot be taken over.
	denom, err := types.GetTokenDenom(creator, subdenom)
	if err != nil {
		return "", err
	}
	if _, found := k.bk.GetDenomMetaData(ctx, denom); found {
		return "", types.ErrDenomExists.Wrapf("denom: %s", denom)
	}
	return denom, nil
}

func (k Keeper) chargeForCreateDenom(ctx sdk.Context, creator string) error {
	params := k.GetParams(ctx)
	if !params.DenomCreationFee.IsZero() {
		if err := k.bk.SendCoins(ctx, creator, params.FeeCollectorAddress, params.DenomCreationFee); err != nil {
			return err
		}
	}
	if params.DenomCreationGasConsume != 0 {
		ctx.GasMeter().ConsumeGas(params.DenomCreationGasConsume, "consume denom creation gas")
	}
	return nil
}
