package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/tokenfactory/types"
)

func (k Keeper) mintTo(ctx sdk.Context, amount sdk.Coin, mintTo string) error {
	if _, _, err := types.DeconstructDenom(amount.Denom); err != nil {
		return err
	}
	coins := sdk.NewCoins(amount)
	if err := k.bk.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, mintTo, coins)
}

func (k Keeper) burnFrom(ctx sdk.Context, amount sdk.Coin, burnFrom string) error {
	if _, _, err := types.DeconstructDenom(amount.Denom); err != nil {
		return err
	}
	if k.ak.IsModuleAccount(burnFrom) {
		return sdkerrors.Wrapf(types.ErrBurnFromModuleAccount, "address: %s", burnFrom)
	}
	coins := sdk.NewCoins(amount)
	if err := k.bk.SendCoinsFromAccountToModule(ctx, burnFrom, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bk.BurnCoins(ctx, types.ModuleName, coins)
}

// assertAdmin fails unless sender administers denom.
func (k Keeper) assertAdmin(ctx sdk.Context, sender, denom string) error {
	metadata, err := k.GetAuthorityMetadata(ctx, denom)
	if err != nil {
		return err
	}
	if sender != metadata.Admin {
		return types.ErrUnauthorized
	}
	return nil
}
