package types

import (
	sdk "github.com/okx/testtube/types"
	banktypes "github.com/okx/testtube/x/bank/types"
)

type BankKeeper interface {
	GetDenomMetaData(ctx sdk.Context, denom string) (banktypes.Metadata, bool)
	SetDenomMetaData(ctx sdk.Context, denomMetaData banktypes.Metadata)

	MintCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule, recipientAddr string, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr, recipientModule string, amt sdk.Coins) error
	SendCoins(ctx sdk.Context, fromAddr, toAddr string, amt sdk.Coins) error
}

type AccountKeeper interface {
	IsModuleAccount(addr string) bool
}
