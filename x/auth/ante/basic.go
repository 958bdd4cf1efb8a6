package ante

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/auth/keeper"
)

// ValidateBasicDecorator checks the tx carries a fee, a public key and,
// outside of simulation, a signature.
type ValidateBasicDecorator struct{}

func NewValidateBasicDecorator() ValidateBasicDecorator { return ValidateBasicDecorator{} }

func (vbd ValidateBasicDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	if len(tx.AuthInfo.PubKey) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidPubKey, "tx has no signer public key")
	}
	if !simulate && len(tx.Signature) == 0 {
		return sdkerrors.ErrNoSignatures
	}
	if err := tx.AuthInfo.Fee.Amount.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInsufficientFee, err.Error())
	}
	return next(ctx, tx, msgs, simulate)
}

// ValidateMemoDecorator bounds the memo length.
type ValidateMemoDecorator struct {
	ak keeper.AccountKeeper
}

func NewValidateMemoDecorator(ak keeper.AccountKeeper) ValidateMemoDecorator {
	return ValidateMemoDecorator{ak: ak}
}

func (vmd ValidateMemoDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	maxMemo := vmd.ak.GetParams(ctx).MaxMemoCharacters
	if uint64(len(tx.Body.Memo)) > maxMemo {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "maximum number of characters is %d but received %d characters", maxMemo, len(tx.Body.Memo))
	}
	return next(ctx, tx, msgs, simulate)
}

// ConsumeTxSizeGasDecorator charges gas per encoded tx byte. In
// simulation the missing signature is charged as if present.
type ConsumeTxSizeGasDecorator struct {
	ak keeper.AccountKeeper
}

func NewConsumeGasForTxSizeDecorator(ak keeper.AccountKeeper) ConsumeTxSizeGasDecorator {
	return ConsumeTxSizeGasDecorator{ak: ak}
}

func (cgts ConsumeTxSizeGasDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	if simulate && len(tx.Signature) == 0 {
		tx.Signature = make([]byte, account.SignatureSize)
	}
	bz, err := codec.Marshal(tx)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
	}
	params := cgts.ak.GetParams(ctx)
	ctx.GasMeter().ConsumeGas(params.TxSizeCostPerByte*uint64(len(bz)), "txSize")
	return next(ctx, tx, msgs, simulate)
}
