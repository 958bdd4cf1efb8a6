package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	cmtypes "github.com/okx/testtube/x/contractmanager/types"
)

type Contractmanager struct {
	runner runner.Runner
}

func NewContractmanager(r runner.Runner) Contractmanager { return Contractmanager{runner: r} }

func (m Contractmanager) UpdateParams(msg cmtypes.MsgUpdateParams, signer *account.SigningAccount) (*runner.ExecuteResponse[cmtypes.MsgUpdateParamsResponse], error) {
	return execute[cmtypes.MsgUpdateParamsResponse](m.runner, cmtypes.TypeURLMsgUpdateParams, msg, signer)
}

func (m Contractmanager) QueryParams(req *cmtypes.QueryParamsRequest) (*cmtypes.QueryParamsResponse, error) {
	return query[cmtypes.QueryParamsResponse](m.runner, cmtypes.QueryPath+"Params", req)
}

func (m Contractmanager) QueryFailures(req *cmtypes.QueryFailuresRequest) (*cmtypes.QueryFailuresResponse, error) {
	return query[cmtypes.QueryFailuresResponse](m.runner, cmtypes.QueryPath+"Failures", req)
}

func (m Contractmanager) QueryAddressFailure(req *cmtypes.QueryAddressFailureRequest) (*cmtypes.QueryAddressFailureResponse, error) {
	return query[cmtypes.QueryAddressFailureResponse](m.runner, cmtypes.QueryPath+"AddressFailure", req)
}
