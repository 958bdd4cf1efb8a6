package types

import (
	sdk "github.com/okx/testtube/types"
)

type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr, denom string) sdk.Coin
	MintCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule, recipientAddr string, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr, recipientModule string, amt sdk.Coins) error
}
