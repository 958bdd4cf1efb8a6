package keeper

import (
	sdk "github.com/okx/testtube/types"
	marketmaptypes "github.com/okx/testtube/x/marketmap/types"
)

// Hooks registers currency pairs for markets created in the market map.
type Hooks struct {
	k Keeper
}

var _ marketmaptypes.MarketMapHooks = Hooks{}

func (k Keeper) Hooks() Hooks { return Hooks{k: k} }

func (h Hooks) AfterMarketCreated(ctx sdk.Context, market marketmaptypes.Market) error {
	cp := market.Ticker.CurrencyPair
	if h.k.HasCurrencyPair(ctx, cp) {
		return nil
	}
	return h.k.CreateCurrencyPair(ctx, cp, market.Ticker.Decimals)
}

func (h Hooks) AfterMarketUpdated(ctx sdk.Context, market marketmaptypes.Market) error {
	cp := market.Ticker.CurrencyPair
	if h.k.HasCurrencyPair(ctx, cp) {
		state, err := h.k.getCurrencyPairState(ctx, cp)
		if err != nil {
			return err
		}
		state.Decimals = market.Ticker.Decimals
		h.k.setCurrencyPairState(ctx, cp, state)
		return nil
	}
	return h.k.CreateCurrencyPair(ctx, cp, market.Ticker.Decimals)
}
