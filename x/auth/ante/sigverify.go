package ante

import (
	"bytes"
	"fmt"

	"github.com/okx/testtube/account"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/auth/keeper"
)

// signer resolves the signer address of tx from its public key and checks
// every message names it.
func signer(ak keeper.AccountKeeper, tx sdk.Tx, msgs []sdk.Msg) (string, error) {
	addr, err := sdk.AddressFromPubKey(ak.Bech32Prefix(), tx.AuthInfo.PubKey)
	if err != nil {
		return "", sdkerrors.Wrap(sdkerrors.ErrInvalidPubKey, err.Error())
	}
	for i, msg := range msgs {
		if msg.GetSigner() != addr {
			return "", sdkerrors.Wrapf(sdkerrors.ErrUnauthorized,
				"message index %d: signer %s does not match tx signer %s", i, msg.GetSigner(), addr)
		}
	}
	return addr, nil
}

// SetPubKeyDecorator checks the signer account exists and records its
// public key on first use.
type SetPubKeyDecorator struct {
	ak keeper.AccountKeeper
}

func NewSetPubKeyDecorator(ak keeper.AccountKeeper) SetPubKeyDecorator {
	return SetPubKeyDecorator{ak: ak}
}

func (spkd SetPubKeyDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	addr, err := signer(spkd.ak, tx, msgs)
	if err != nil {
		return err
	}
	acc, ok := spkd.ak.GetAccount(ctx, addr)
	if !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownAddress, "account %s does not exist", addr)
	}
	if len(acc.PubKey) == 0 {
		acc.PubKey = tx.AuthInfo.PubKey
		spkd.ak.SetAccount(ctx, acc)
	} else if !bytes.Equal(acc.PubKey, tx.AuthInfo.PubKey) {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "public key does not match account %s", addr)
	}
	return next(ctx, tx, msgs, simulate)
}

// SigVerificationDecorator checks the sequence and, outside of
// simulation, the signature. Signature gas is charged in both modes.
type SigVerificationDecorator struct {
	ak keeper.AccountKeeper
}

func NewSigVerificationDecorator(ak keeper.AccountKeeper) SigVerificationDecorator {
	return SigVerificationDecorator{ak: ak}
}

func (svd SigVerificationDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	addr, err := signer(svd.ak, tx, msgs)
	if err != nil {
		return err
	}
	acc, ok := svd.ak.GetAccount(ctx, addr)
	if !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownAddress, "account %s does not exist", addr)
	}

	ctx.GasMeter().ConsumeGas(svd.ak.GetParams(ctx).SigVerifyCostSecp256k1, "ante verify: secp256k1")

	if tx.AuthInfo.Sequence != acc.Sequence {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidSequence,
			"account sequence mismatch, expected %d, got %d", acc.Sequence, tx.AuthInfo.Sequence)
	}
	if simulate {
		return next(ctx, tx, msgs, simulate)
	}

	signBytes, err := tx.SignBytes(ctx.ChainID(), acc.AccountNumber)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
	}
	if !account.VerifySignature(tx.AuthInfo.PubKey, signBytes, tx.Signature) {
		return sdkerrors.Wrap(sdkerrors.ErrUnauthorized, fmt.Sprintf(
			"signature verification failed; please verify account number (%d), sequence (%d) and chain-id (%s)",
			acc.AccountNumber, acc.Sequence, ctx.ChainID()))
	}
	return next(ctx, tx, msgs, simulate)
}

// IncrementSequenceDecorator bumps the signer sequence. It runs last so
// that the bump is kept whenever authentication succeeded.
type IncrementSequenceDecorator struct {
	ak keeper.AccountKeeper
}

func NewIncrementSequenceDecorator(ak keeper.AccountKeeper) IncrementSequenceDecorator {
	return IncrementSequenceDecorator{ak: ak}
}

func (isd IncrementSequenceDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next AnteHandler) error {
	addr, err := signer(isd.ak, tx, msgs)
	if err != nil {
		return err
	}
	acc, ok := isd.ak.GetAccount(ctx, addr)
	if !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownAddress, "account %s does not exist", addr)
	}
	acc.Sequence++
	isd.ak.SetAccount(ctx, acc)
	return next(ctx, tx, msgs, simulate)
}
