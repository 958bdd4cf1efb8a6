package types

import (
	"math/big"

	sdk "github.com/okx/testtube/types"
	stakingtypes "github.com/okx/testtube/x/staking/types"
)

// AccountKeeper resolves the gov module account.
type AccountKeeper interface {
	GetModuleAddress(name string) string
	HasAccount(ctx sdk.Context, addr string) bool
}

// BankKeeper escrows, refunds and burns deposits.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule, recipientAddr string, amt sdk.Coins) error
	BurnCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
}

// StakingKeeper provides the voting power of validators.
type StakingKeeper interface {
	GetValidatorByAccount(ctx sdk.Context, account string) (stakingtypes.Validator, bool)
	TotalBondedTokens(ctx sdk.Context) *big.Int
	IsValidator(ctx sdk.Context, account string) bool
}
