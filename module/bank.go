package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	banktypes "github.com/okx/testtube/x/bank/types"
)

type Bank struct {
	runner runner.Runner
}

func NewBank(r runner.Runner) Bank { return Bank{runner: r} }

func (m Bank) Send(msg banktypes.MsgSend, signer *account.SigningAccount) (*runner.ExecuteResponse[banktypes.MsgSendResponse], error) {
	return execute[banktypes.MsgSendResponse](m.runner, banktypes.TypeURLMsgSend, msg, signer)
}

func (m Bank) QueryBalance(req *banktypes.QueryBalanceRequest) (*banktypes.QueryBalanceResponse, error) {
	return query[banktypes.QueryBalanceResponse](m.runner, banktypes.QueryPath+"Balance", req)
}

func (m Bank) QueryAllBalances(req *banktypes.QueryAllBalancesRequest) (*banktypes.QueryAllBalancesResponse, error) {
	return query[banktypes.QueryAllBalancesResponse](m.runner, banktypes.QueryPath+"AllBalances", req)
}

func (m Bank) QueryTotalSupply(req *banktypes.QueryTotalSupplyRequest) (*banktypes.QueryTotalSupplyResponse, error) {
	return query[banktypes.QueryTotalSupplyResponse](m.runner, banktypes.QueryPath+"TotalSupply", req)
}

func (m Bank) QuerySupplyOf(req *banktypes.QuerySupplyOfRequest) (*banktypes.QuerySupplyOfResponse, error) {
	return query[banktypes.QuerySupplyOfResponse](m.runner, banktypes.QueryPath+"SupplyOf", req)
}

func (m Bank) QueryDenomMetadata(req *banktypes.QueryDenomMetadataRequest) (*banktypes.QueryDenomMetadataResponse, error) {
	return query[banktypes.QueryDenomMetadataResponse](m.runner, banktypes.QueryPath+"DenomMetadata", req)
}

func (m Bank) QueryDenomsMetadata(req *banktypes.QueryDenomsMetadataRequest) (*banktypes.QueryDenomsMetadataResponse, error) {
	return query[banktypes.QueryDenomsMetadataResponse](m.runner, banktypes.QueryPath+"DenomsMetadata", req)
}

func (m Bank) QueryParams(req *banktypes.QueryParamsRequest) (*banktypes.QueryParamsResponse, error) {
	return query[banktypes.QueryParamsResponse](m.runner, banktypes.QueryPath+"Params", req)
}
