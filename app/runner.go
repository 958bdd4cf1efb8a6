package app

import (
	"math"

	"github.com/pkg/errors"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/runner"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

var _ runner.Runner = (*TestApp)(nil)

// ExecuteMultipleRaw signs msgs with signer and delivers them as the only
// tx of a new block. The signer sequence is read from the chain before
// signing and recorded afterwards.
func (app *TestApp) ExecuteMultipleRaw(msgs []codec.Any, signer *account.SigningAccount) (*sdk.TxResult, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	accNum, seq, err := app.accountState(signer.Address())
	if err != nil {
		return nil, err
	}
	signer.SetSequence(seq)

	fee, err := app.buildFee(msgs, signer)
	if err != nil {
		return nil, err
	}
	txBytes, err := app.signTx(msgs, signer, fee, accNum)
	if err != nil {
		return nil, err
	}

	res, err := app.FinalizeBlock([][]byte{txBytes})
	if err != nil {
		return nil, err
	}
	txRes := res.TxResults[0]

	_, next, err := app.accountState(signer.Address())
	if err != nil {
		return nil, err
	}
	if next != seq {
		signer.RecordSubmission(next, txRes.IsOK())
	}
	return &txRes, nil
}

// QueryRaw answers a query against the last committed block.
func (app *TestApp) QueryRaw(path string, req []byte) ([]byte, error) {
	res, err := app.Query(path, req)
	if err != nil {
		if sdkerrors.IsOf(err, sdkerrors.ErrUnknownRoute) {
			return nil, &runner.RouteNotFoundError{Path: path}
		}
		return nil, &runner.QueryError{Msg: err.Error()}
	}
	return res, nil
}

// SimulateTx runs msgs signed by signer against the next block without
// committing anything and returns the gas it would use. The simulated tx
// carries a nominal fee so that fee deduction is metered.
func (app *TestApp) SimulateTx(msgs []codec.Any, signer *account.SigningAccount) (sdk.GasInfo, error) {
	accNum, seq, err := app.accountState(signer.Address())
	if err != nil {
		return sdk.GasInfo{}, err
	}
	signer.SetSequence(seq)

	var fee sdk.Fee
	if auto, ok := signer.FeeSetting().(account.AutoFee); ok && auto.GasPrice.Rat().Sign() > 0 {
		fee.Amount = sdk.NewCoins(sdk.NewCoin(auto.GasPrice.Denom, 1))
	}
	txBytes, err := app.signTx(msgs, signer, fee, accNum)
	if err != nil {
		return sdk.GasInfo{}, err
	}
	gasInfo, _, err := app.Simulate(txBytes)
	return gasInfo, err
}

// buildFee resolves the fee setting of signer into a tx fee. A signer
// without a fee setting pays the chain default.
func (app *TestApp) buildFee(msgs []codec.Any, signer *account.SigningAccount) (sdk.Fee, error) {
	setting := signer.FeeSetting()
	if setting == nil {
		setting = app.cfg.DefaultFeeSetting()
		signer.WithFeeSetting(setting)
	}
	switch setting := setting.(type) {
	case account.CustomFee:
		return sdk.Fee{Amount: setting.Amount, GasLimit: setting.GasLimit}, nil
	case account.AutoFee:
		gasInfo, err := app.SimulateTx(msgs, signer)
		if err != nil {
			return sdk.Fee{}, err
		}
		gasLimit := adjustGas(gasInfo.GasUsed, setting.GasAdjustment)
		return sdk.Fee{Amount: sdk.NewCoins(setting.GasPrice.MulCeil(gasLimit)), GasLimit: gasLimit}, nil
	default:
		return sdk.Fee{}, errors.Errorf("unsupported fee setting %T", setting)
	}
}

// adjustGas returns ceil(gas * adjustment).
func adjustGas(gas uint64, adjustment float64) uint64 {
	return uint64(math.Ceil(float64(gas) * adjustment))
}

func (app *TestApp) signTx(msgs []codec.Any, signer *account.SigningAccount, fee sdk.Fee, accNum uint64) ([]byte, error) {
	tx := sdk.Tx{
		Body: sdk.TxBody{Messages: msgs},
		AuthInfo: sdk.AuthInfo{
			PubKey:   signer.PublicKey(),
			Sequence: signer.Sequence(),
			Fee:      fee,
		},
	}
	signBytes, err := tx.SignBytes(app.cfg.ChainID, accNum)
	if err != nil {
		return nil, err
	}
	if tx.Signature, err = signer.Sign(signBytes); err != nil {
		return nil, errors.Wrap(err, "sign tx")
	}
	return sdk.EncodeTx(tx)
}

// accountState returns the account number and sequence of addr. An
// account the chain does not know reports zeros; the ante handler rejects
// its txs.
func (app *TestApp) accountState(addr string) (accNum, seq uint64, err error) {
	err = app.View(func(ctx sdk.Context) error {
		acc, found := app.AccountKeeper.GetAccount(ctx, addr)
		if found {
			accNum, seq = acc.AccountNumber, acc.Sequence
		}
		return nil
	})
	return accNum, seq, err
}
