package types

import (
	sdk "github.com/okx/testtube/types"
)

// MarketMapHooks run after a market is written.
type MarketMapHooks interface {
	AfterMarketCreated(ctx sdk.Context, market Market) error
	AfterMarketUpdated(ctx sdk.Context, market Market) error
}

// MultiMarketMapHooks runs hooks in order and stops at the first error.
type MultiMarketMapHooks []MarketMapHooks

func (mh MultiMarketMapHooks) AfterMarketCreated(ctx sdk.Context, market Market) error {
	for _, h := range mh {
		if err := h.AfterMarketCreated(ctx, market); err != nil {
			return err
		}
	}
	return nil
}

func (mh MultiMarketMapHooks) AfterMarketUpdated(ctx sdk.Context, market Market) error {
	for _, h := range mh {
		if err := h.AfterMarketUpdated(ctx, market); err != nil {
			return err
		}
	}
	return nil
}
