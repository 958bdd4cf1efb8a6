package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/marketmap/types"
)

type Querier struct {
	*Keeper
}

func NewQuerier(k *Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) MarketMap(ctx sdk.Context, _ *types.MarketMapRequest) (*types.MarketMapResponse, error) {
	markets, err := q.GetAllMarkets(ctx)
	if err != nil {
		return nil, err
	}
	return &types.MarketMapResponse{
		MarketMap:   types.MarketMap{Markets: markets},
		LastUpdated: q.GetLastUpdated(ctx),
		ChainId:     ctx.ChainID(),
	}, nil
}

func (q Querier) Market(ctx sdk.Context, req *types.MarketRequest) (*types.MarketResponse, error) {
	market, err := q.GetMarket(ctx, req.CurrencyPair)
	if err != nil {
		return nil, err
	}
	return &types.MarketResponse{Market: market}, nil
}

func (q Querier) LastUpdated(ctx sdk.Context, _ *types.LastUpdatedRequest) (*types.LastUpdatedResponse, error) {
	return &types.LastUpdatedResponse{LastUpdated: q.GetLastUpdated(ctx)}, nil
}

func (q Querier) Params(ctx sdk.Context, _ *types.ParamsRequest) (*types.ParamsResponse, error) {
	return &types.ParamsResponse{Params: q.GetParams(ctx)}, nil
}
