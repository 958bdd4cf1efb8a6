package types

import (
	sdk "github.com/okx/testtube/types"
)

type QueryBalanceRequest struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

type QueryBalanceResponse struct {
	Balance sdk.Coin `json:"balance"`
}

type QueryAllBalancesRequest struct {
	Address string `json:"address"`
}

type QueryAllBalancesResponse struct {
	Balances sdk.Coins `json:"balances"`
}

type QueryTotalSupplyRequest struct{}

type QueryTotalSupplyResponse struct {
	Supply sdk.Coins `json:"supply"`
}

type QuerySupplyOfRequest struct {
	Denom string `json:"denom"`
}

type QuerySupplyOfResponse struct {
	Amount sdk.Coin `json:"amount"`
}

type QueryDenomMetadataRequest struct {
	Denom string `json:"denom"`
}

type QueryDenomMetadataResponse struct {
	Metadata Metadata `json:"metadata"`
}

type QueryDenomsMetadataRequest struct{}

type QueryDenomsMetadataResponse struct {
	Metadatas []Metadata `json:"metadatas"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}
