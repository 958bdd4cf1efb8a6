package types

import (
	sdk "github.com/okx/testtube/types"
)

// BankKeeper moves self-bonded tokens into the bonded pool.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr, recipientModule string, amt sdk.Coins) error
}
