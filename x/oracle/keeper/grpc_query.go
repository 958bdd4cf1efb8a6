package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/oracle/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) GetAllCurrencyPairs(ctx sdk.Context, _ *types.GetAllCurrencyPairsRequest) (*types.GetAllCurrencyPairsResponse, error) {
	return &types.GetAllCurrencyPairsResponse{CurrencyPairs: q.Keeper.GetAllCurrencyPairs(ctx)}, nil
}

func (q Querier) GetPrice(ctx sdk.Context, req *types.GetPriceRequest) (*types.GetPriceResponse, error) {
	if err := req.CurrencyPair.ValidateBasic(); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidCurrencyPair, err.Error())
	}
	res, err := q.GetPriceWithNonceForCurrencyPair(ctx, req.CurrencyPair)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (q Querier) GetPrices(ctx sdk.Context, req *types.GetPricesRequest) (*types.GetPricesResponse, error) {
	prices := make([]types.GetPriceResponse, 0, len(req.CurrencyPairIds))
	for _, id := range req.CurrencyPairIds {
		cp, err := types.CurrencyPairFromString(id)
		if err != nil {
			return nil, sdkerrors.Wrap(types.ErrInvalidCurrencyPair, err.Error())
		}
		res, err := q.GetPriceWithNonceForCurrencyPair(ctx, cp)
		if err != nil {
			return nil, err
		}
		prices = append(prices, res)
	}
	return &types.GetPricesResponse{Prices: prices}, nil
}

func (q Querier) GetCurrencyPairMapping(ctx sdk.Context, _ *types.GetCurrencyPairMappingRequest) (*types.GetCurrencyPairMappingResponse, error) {
	return &types.GetCurrencyPairMappingResponse{CurrencyPairMapping: q.Keeper.GetCurrencyPairMapping(ctx)}, nil
}
