package ante

import (
	"github.com/okx/testtube/app/simulator"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/auth/keeper"
)

// AnteHandler is one link of the ante chain.
type AnteHandler func(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool) error

// AnteDecorator wraps the next ante handler.
type AnteDecorator interface {
	AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error
}

// ChainAnteDecorators links decorators so that each calls the next one.
func ChainAnteDecorators(chain ...AnteDecorator) simulator.AnteHandler {
	if len(chain) == 0 {
		return nil
	}
	var next AnteHandler = func(sdk.Context, sdk.Tx, []sdk.Msg, bool) error { return nil }
	for i := len(chain) - 1; i >= 0; i-- {
		decorator, inner := chain[i], next
		next = func(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool) error {
			return decorator.AnteHandle(ctx, tx, msgs, simulate, inner)
		}
	}
	return simulator.AnteHandler(next)
}

// BankKeeper moves fees.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, sender, recipientModule string, amt sdk.Coins) error
}

// HandlerOptions are the dependencies of the default ante chain.
type HandlerOptions struct {
	AccountKeeper keeper.AccountKeeper
	BankKeeper    BankKeeper
	// Extra decorators run after authentication, before the sequence is
	// incremented.
	Extra []AnteDecorator
}

// NewAnteHandler returns the default chain: basic checks, tx size gas,
// signer and pubkey, fee deduction, signature and sequence checks, and
// the sequence increment.
func NewAnteHandler(options HandlerOptions) simulator.AnteHandler {
	decorators := []AnteDecorator{
		NewValidateBasicDecorator(),
		NewValidateMemoDecorator(options.AccountKeeper),
		NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
		NewSetPubKeyDecorator(options.AccountKeeper),
		NewDeductFeeDecorator(options.AccountKeeper, options.BankKeeper),
		NewSigVerificationDecorator(options.AccountKeeper),
	}
	decorators = append(decorators, options.Extra...)
	decorators = append(decorators, NewIncrementSequenceDecorator(options.AccountKeeper))
	return ChainAnteDecorators(decorators...)
}
