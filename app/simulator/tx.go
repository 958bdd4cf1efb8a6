package simulator

import (
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/libs/store"
	"github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

type runTxMode uint8

const (
	runTxModeDeliver runTxMode = iota
	runTxModeSimulate
)

// runTx decodes, authenticates and executes one tx on ctx.
//
// The ante handler runs on its own branch that is kept once it succeeds,
// so a failing message still pays its fee and consumes its sequence. The
// messages run on a second branch that is kept only if all of them
// succeed.
func (app *BaseApp) runTx(mode runTxMode, ctx types.Context, txBytes []byte) (result types.TxResult) {
	var (
		gasWanted uint64
		meter     = store.NewInfiniteGasMeter()
		events    types.Events
	)

	defer func() {
		if r := recover(); r != nil {
			err := recoveryError(r, gasWanted, meter)
			result = errorResult(err, gasWanted, meter.GasConsumed(), events)
		}
	}()

	tx, err := types.DecodeTx(txBytes)
	if err != nil {
		return errorResult(err, 0, 0, nil)
	}
	gasWanted = tx.AuthInfo.Fee.GasLimit

	msgs := make([]types.Msg, len(tx.Body.Messages))
	for i, packed := range tx.Body.Messages {
		msg, err := app.msgRouter.Decode(packed)
		if err != nil {
			return errorResult(sdkerrors.Wrapf(err, "message index: %d", i), gasWanted, 0, nil)
		}
		if err := msg.ValidateBasic(); err != nil {
			return errorResult(sdkerrors.Wrapf(err, "message index: %d", i), gasWanted, 0, nil)
		}
		msgs[i] = msg
	}

	simulate := mode == runTxModeSimulate
	if !simulate {
		meter = store.NewGasMeter(gasWanted)
	}
	ctx = ctx.WithGasMeter(meter).WithSimulate(simulate)

	if app.anteHandler != nil {
		anteCtx, writeAnte := ctx.CacheContext()
		if err := app.anteHandler(anteCtx, tx, msgs, simulate); err != nil {
			return errorResult(err, gasWanted, meter.GasConsumed(), nil)
		}
		writeAnte()
		events = ctx.EventManager().Events()
	}

	msgCtx, writeMsgs := ctx.CacheContext()
	responses := make([]codec.Any, 0, len(msgs))
	for i, msg := range msgs {
		typeURL := tx.Body.Messages[i].TypeURL
		msgCtx.EventManager().EmitEvent(types.NewEvent(types.EventTypeMessage,
			types.NewAttribute(types.AttributeKeyAction, typeURL),
			types.NewAttribute(types.AttributeKeySender, msg.GetSigner()),
		))
		res, err := app.msgRouter.Handle(msgCtx, typeURL, msg)
		if err != nil {
			err = sdkerrors.Wrapf(err, "failed to execute message; message index: %d", i)
			return errorResult(err, gasWanted, meter.GasConsumed(), events)
		}
		responses = append(responses, res)
	}
	writeMsgs()

	data, err := codec.Marshal(types.TxMsgData{MsgResponses: responses})
	if err != nil {
		return errorResult(err, gasWanted, meter.GasConsumed(), events)
	}
	return types.TxResult{
		Data:      data,
		GasWanted: gasWanted,
		GasUsed:   meter.GasConsumed(),
		Events:    ctx.EventManager().Events(),
	}
}

func recoveryError(r interface{}, gasWanted uint64, meter store.GasMeter) error {
	switch rType := r.(type) {
	case store.ErrorOutOfGas:
		return sdkerrors.Wrapf(sdkerrors.ErrOutOfGas,
			"out of gas in location: %v; gasWanted: %d, gasUsed: %d", rType.Descriptor, gasWanted, meter.GasConsumed())
	default:
		return sdkerrors.Wrapf(sdkerrors.ErrPanic, "recovered: %v", r)
	}
}

func errorResult(err error, gasWanted, gasUsed uint64, events types.Events) types.TxResult {
	codespace, code, log := sdkerrors.ABCIInfo(err)
	return types.TxResult{
		Code:      code,
		Codespace: codespace,
		Log:       log,
		GasWanted: gasWanted,
		GasUsed:   gasUsed,
		Events:    events,
	}
}
