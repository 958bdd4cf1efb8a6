package types

import (
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

type MarketMapRequest struct{}

type MarketMapResponse struct {
	MarketMap   MarketMap `json:"market_map"`
	LastUpdated uint64    `json:"last_updated"`
	ChainId     string    `json:"chain_id"`
}

type MarketRequest struct {
	CurrencyPair oracletypes.CurrencyPair `json:"currency_pair"`
}

type MarketResponse struct {
	Market Market `json:"market"`
}

type LastUpdatedRequest struct{}

// LastUpdatedResponse carries the height of the last market change.
type LastUpdatedResponse struct {
	LastUpdated uint64 `json:"last_updated"`
}

type ParamsRequest struct{}

type ParamsResponse struct {
	Params Params `json:"params"`
}
