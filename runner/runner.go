package runner

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/types"
)

// Runner is the chain simulator seen from the client side.
//
// ExecuteMultipleRaw signs msgs with signer, delivers them as one tx and
// returns the raw outcome. A tx the simulator rejected or reverted is
// reported as an *ExecuteError. QueryRaw answers a read-only query on
// path; an unknown path is reported as a *RouteNotFoundError.
type Runner interface {
	ExecuteMultipleRaw(msgs []codec.Any, signer *account.SigningAccount) (*types.TxResult, error)
	QueryRaw(path string, req []byte) ([]byte, error)
}

// Msg is one message of a multi-message tx: a value and the type URL it
// is routed by.
type Msg struct {
	Value   interface{}
	TypeURL string
}

// ExecuteResponse is the outcome of a successful execution. Data is the
// typed response of the first message; every message response is kept in
// MsgResponses.
type ExecuteResponse[R any] struct {
	Data         R
	RawData      []byte
	MsgResponses []codec.Any
	Events       []types.Event
	GasInfo      types.GasInfo
}

// DecodeMsgResponse decodes the response of message i into ptr.
func (r *ExecuteResponse[R]) DecodeMsgResponse(i int, ptr interface{}) error {
	if i < 0 || i >= len(r.MsgResponses) {
		return &DecodeError{Err: codecIndexError(i, len(r.MsgResponses))}
	}
	if err := r.MsgResponses[i].UnpackInto(ptr); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Execute encodes msg under typeURL and executes it as a single message
// tx signed by signer.
func Execute[R, M any](r Runner, msg M, typeURL string, signer *account.SigningAccount) (*ExecuteResponse[R], error) {
	packed, err := codec.NewAny(typeURL, msg)
	if err != nil {
		return nil, &EncodeError{TypeURL: typeURL, Err: err}
	}
	return ExecuteMultipleRaw[R](r, []codec.Any{packed}, signer)
}

// ExecuteMultiple executes msgs, in order, as one atomic tx.
func ExecuteMultiple[R any](r Runner, msgs []Msg, signer *account.SigningAccount) (*ExecuteResponse[R], error) {
	anys := make([]codec.Any, 0, len(msgs))
	for _, msg := range msgs {
		packed, err := codec.NewAny(msg.TypeURL, msg.Value)
		if err != nil {
			return nil, &EncodeError{TypeURL: msg.TypeURL, Err: err}
		}
		anys = append(anys, packed)
	}
	return ExecuteMultipleRaw[R](r, anys, signer)
}

// ExecuteMultipleRaw executes already encoded messages as one atomic tx.
func ExecuteMultipleRaw[R any](r Runner, msgs []codec.Any, signer *account.SigningAccount) (*ExecuteResponse[R], error) {
	res, err := r.ExecuteMultipleRaw(msgs, signer)
	if err != nil {
		return nil, asExecuteError(err)
	}
	if !res.IsOK() {
		return nil, &ExecuteError{Msg: res.Log}
	}
	return newExecuteResponse[R](res)
}

func newExecuteResponse[R any](res *types.TxResult) (*ExecuteResponse[R], error) {
	var msgData types.TxMsgData
	if err := codec.Unmarshal(res.Data, &msgData); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(msgData.MsgResponses) == 0 {
		return nil, &DecodeError{Err: codecIndexError(0, 0)}
	}

	resp := &ExecuteResponse[R]{
		RawData:      res.Data,
		MsgResponses: msgData.MsgResponses,
		Events:       res.Events,
		GasInfo:      res.GasInfo(),
	}
	if err := msgData.MsgResponses[0].UnpackInto(&resp.Data); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return resp, nil
}

// Query encodes req, queries path and decodes the response as R.
func Query[R, Q any](r Runner, path string, req *Q) (*R, error) {
	if req == nil {
		req = new(Q)
	}
	bz, err := codec.Marshal(req)
	if err != nil {
		return nil, &EncodeError{TypeURL: path, Err: err}
	}
	resBz, err := r.QueryRaw(path, bz)
	if err != nil {
		return nil, asQueryError(err)
	}
	res := new(R)
	if err := codec.Unmarshal(resBz, res); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return res, nil
}
