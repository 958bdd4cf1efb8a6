package types

import (
	sdk "github.com/okx/testtube/types"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryGetLimitOrderTrancheUserRequest struct {
	Address                string `json:"address"`
	TrancheKey             string `json:"tranche_key"`
	CalcWithdrawableShares bool   `json:"calc_withdrawable_shares"`
}

type QueryGetLimitOrderTrancheUserResponse struct {
	LimitOrderTrancheUser LimitOrderTrancheUser `json:"limit_order_tranche_user"`
	WithdrawableShares    string                `json:"withdrawable_shares"`
}

type QueryAllLimitOrderTrancheUserRequest struct{}

type QueryAllLimitOrderTrancheUserResponse struct {
	LimitOrderTrancheUser []LimitOrderTrancheUser `json:"limit_order_tranche_user"`
}

type QueryAllLimitOrderTrancheUserByAddressRequest struct {
	Address string `json:"address"`
}

type QueryAllLimitOrderTrancheUserByAddressResponse struct {
	LimitOrders []LimitOrderTrancheUser `json:"limit_orders"`
}

type QueryAllUserDepositsRequest struct {
	Address         string `json:"address"`
	IncludePoolData bool   `json:"include_pool_data"`
}

type QueryAllUserDepositsResponse struct {
	Deposits []DepositRecord `json:"deposits"`
}

// QueryAllTickLiquidityRequest selects the liquidity that takers paying
// TokenIn can trade against.
type QueryAllTickLiquidityRequest struct {
	PairId  string `json:"pair_id"`
	TokenIn string `json:"token_in"`
}

type QueryAllTickLiquidityResponse struct {
	TickLiquidity []TickLiquidity `json:"tick_liquidity"`
}

type QueryAllPoolReservesRequest struct {
	PairId  string `json:"pair_id"`
	TokenIn string `json:"token_in"`
}

type QueryAllPoolReservesResponse struct {
	PoolReserves []PoolReserves `json:"pool_reserves"`
}

type QueryAllLimitOrderTrancheRequest struct {
	PairId  string `json:"pair_id"`
	TokenIn string `json:"token_in"`
}

type QueryAllLimitOrderTrancheResponse struct {
	LimitOrderTranche []LimitOrderTranche `json:"limit_order_tranche"`
}

type QueryEstimateMultiHopSwapRequest struct {
	Creator        string          `json:"creator"`
	Receiver       string          `json:"receiver"`
	Routes         []MultiHopRoute `json:"routes"`
	AmountIn       string          `json:"amount_in"`
	ExitLimitPrice string          `json:"exit_limit_price"`
	PickBestRoute  bool            `json:"pick_best_route"`
}

type QueryEstimateMultiHopSwapResponse struct {
	CoinOut sdk.Coin `json:"coin_out"`
}

type QueryEstimatePlaceLimitOrderRequest struct {
	Creator          string         `json:"creator"`
	Receiver         string         `json:"receiver"`
	TokenIn          string         `json:"token_in"`
	TokenOut         string         `json:"token_out"`
	TickIndexInToOut int64          `json:"tick_index_in_to_out"`
	AmountIn         string         `json:"amount_in"`
	OrderType        LimitOrderType `json:"order_type"`
	ExpirationTime   int64          `json:"expiration_time"`
	MaxAmountOut     string         `json:"max_amount_out"`
}

type QueryEstimatePlaceLimitOrderResponse struct {
	TotalInCoin sdk.Coin `json:"total_in_coin"`
	SwapInCoin  sdk.Coin `json:"swap_in_coin"`
	SwapOutCoin sdk.Coin `json:"swap_out_coin"`
}
