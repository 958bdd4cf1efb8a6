package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	dextypes "github.com/okx/testtube/x/dex/types"
)

// Dex drives the order book. Messages and queries the chain does not
// serve fail with the dispatch errors for unknown routes, which callers
// can use to probe for support.
type Dex struct {
	runner runner.Runner
}

func NewDex(r runner.Runner) Dex { return Dex{runner: r} }

func (m Dex) PlaceLimitOrder(msg dextypes.MsgPlaceLimitOrder, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgPlaceLimitOrderResponse], error) {
	return execute[dextypes.MsgPlaceLimitOrderResponse](m.runner, dextypes.TypeURLMsgPlaceLimitOrder, msg, signer)
}

func (m Dex) CancelLimitOrder(msg dextypes.MsgCancelLimitOrder, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgCancelLimitOrderResponse], error) {
	return execute[dextypes.MsgCancelLimitOrderResponse](m.runner, dextypes.TypeURLMsgCancelLimitOrder, msg, signer)
}

func (m Dex) WithdrawFilledLimitOrder(msg dextypes.MsgWithdrawFilledLimitOrder, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgWithdrawFilledLimitOrderResponse], error) {
	return execute[dextypes.MsgWithdrawFilledLimitOrderResponse](m.runner, dextypes.TypeURLMsgWithdrawFilledLimitOrder, msg, signer)
}

func (m Dex) Deposit(msg dextypes.MsgDeposit, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgDepositResponse], error) {
	return execute[dextypes.MsgDepositResponse](m.runner, dextypes.TypeURLMsgDeposit, msg, signer)
}

func (m Dex) Withdrawal(msg dextypes.MsgWithdrawal, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgWithdrawalResponse], error) {
	return execute[dextypes.MsgWithdrawalResponse](m.runner, dextypes.TypeURLMsgWithdrawal, msg, signer)
}

func (m Dex) MultiHopSwap(msg dextypes.MsgMultiHopSwap, signer *account.SigningAccount) (*runner.ExecuteResponse[dextypes.MsgMultiHopSwapResponse], error) {
	return execute[dextypes.MsgMultiHopSwapResponse](m.runner, dextypes.TypeURLMsgMultiHopSwap, msg, signer)
}

func (m Dex) Params(req *dextypes.QueryParamsRequest) (*dextypes.QueryParamsResponse, error) {
	return query[dextypes.QueryParamsResponse](m.runner, dextypes.QueryPath+"Params", req)
}

func (m Dex) LimitOrderTrancheUser(req *dextypes.QueryGetLimitOrderTrancheUserRequest) (*dextypes.QueryGetLimitOrderTrancheUserResponse, error) {
	return query[dextypes.QueryGetLimitOrderTrancheUserResponse](m.runner, dextypes.QueryPath+"LimitOrderTrancheUser", req)
}

func (m Dex) LimitOrderTrancheUserAll(req *dextypes.QueryAllLimitOrderTrancheUserRequest) (*dextypes.QueryAllLimitOrderTrancheUserResponse, error) {
	return query[dextypes.QueryAllLimitOrderTrancheUserResponse](m.runner, dextypes.QueryPath+"LimitOrderTrancheUserAll", req)
}

func (m Dex) LimitOrderTrancheUserAllByAddress(req *dextypes.QueryAllLimitOrderTrancheUserByAddressRequest) (*dextypes.QueryAllLimitOrderTrancheUserByAddressResponse, error) {
	return query[dextypes.QueryAllLimitOrderTrancheUserByAddressResponse](m.runner, dextypes.QueryPath+"LimitOrderTrancheUserAllByAddress", req)
}

func (m Dex) LimitOrderTrancheAll(req *dextypes.QueryAllLimitOrderTrancheRequest) (*dextypes.QueryAllLimitOrderTrancheResponse, error) {
	return query[dextypes.QueryAllLimitOrderTrancheResponse](m.runner, dextypes.QueryPath+"LimitOrderTrancheAll", req)
}

func (m Dex) UserDepositsAll(req *dextypes.QueryAllUserDepositsRequest) (*dextypes.QueryAllUserDepositsResponse, error) {
	return query[dextypes.QueryAllUserDepositsResponse](m.runner, dextypes.QueryPath+"UserDepositsAll", req)
}

func (m Dex) TickLiquidityAll(req *dextypes.QueryAllTickLiquidityRequest) (*dextypes.QueryAllTickLiquidityResponse, error) {
	return query[dextypes.QueryAllTickLiquidityResponse](m.runner, dextypes.QueryPath+"TickLiquidityAll", req)
}

func (m Dex) PoolReservesAll(req *dextypes.QueryAllPoolReservesRequest) (*dextypes.QueryAllPoolReservesResponse, error) {
	return query[dextypes.QueryAllPoolReservesResponse](m.runner, dextypes.QueryPath+"PoolReservesAll", req)
}

func (m Dex) EstimateMultiHopSwap(req *dextypes.QueryEstimateMultiHopSwapRequest) (*dextypes.QueryEstimateMultiHopSwapResponse, error) {
	return query[dextypes.QueryEstimateMultiHopSwapResponse](m.runner, dextypes.QueryPath+"EstimateMultiHopSwap", req)
}

func (m Dex) EstimatePlaceLimitOrder(req *dextypes.QueryEstimatePlaceLimitOrderRequest) (*dextypes.QueryEstimatePlaceLimitOrderResponse, error) {
	return query[dextypes.QueryEstimatePlaceLimitOrderResponse](m.runner, dextypes.QueryPath+"EstimatePlaceLimitOrder", req)
}
