package ante

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/auth/keeper"
	"github.com/okx/testtube/x/auth/types"
)

// DeductFeeDecorator moves the tx fee from the signer to the fee
// collector and emits a tx event naming the fee payer.
type DeductFeeDecorator struct {
	ak keeper.AccountKeeper
	bk BankKeeper
}

func NewDeductFeeDecorator(ak keeper.AccountKeeper, bk BankKeeper) DeductFeeDecorator {
	return DeductFeeDecorator{ak: ak, bk: bk}
}

func (dfd DeductFeeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	payer, err := signer(dfd.ak, tx, msgs)
	if err != nil {
		return err
	}
	fee := tx.AuthInfo.Fee.Amount
	if !fee.IsZero() {
		dfd.ak.GetModuleAccount(ctx, types.FeeCollectorName)
		if err := dfd.bk.SendCoinsFromAccountToModule(ctx, payer, types.FeeCollectorName, fee); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee, "%s", err)
		}
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(sdk.EventTypeTx,
		sdk.NewAttribute(sdk.AttributeKeyFee, fee.String()),
		sdk.NewAttribute("fee_payer", payer),
	))
	return next(ctx, tx, msgs, simulate)
}
