package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/marketmap/types"
)

type msgServer struct {
	*Keeper
}

func NewMsgServerImpl(k *Keeper) msgServer { return msgServer{Keeper: k} }

func (ms msgServer) checkAuthority(ctx sdk.Context, authority string) error {
	if !ms.GetParams(ctx).IsAuthority(authority) {
		return sdkerrors.Wrapf(types.ErrUnauthorizedAuthority, "%s", authority)
	}
	return nil
}

func (ms msgServer) CreateMarkets(ctx sdk.Context, msg types.MsgCreateMarkets) (*types.MsgCreateMarketsResponse, error) {
	if err := ms.checkAuthority(ctx, msg.Authority); err != nil {
		return nil, err
	}
	for _, market := range msg.CreateMarkets {
		if err := ms.CreateMarket(ctx, market); err != nil {
			return nil, err
		}
		ctx.Logger().Info("created market", "ticker", market.Ticker.String())
	}
	return &types.MsgCreateMarketsResponse{}, nil
}

func (ms msgServer) UpdateMarkets(ctx sdk.Context, msg types.MsgUpdateMarkets) (*types.MsgUpdateMarketsResponse, error) {
	if err := ms.checkAuthority(ctx, msg.Authority); err != nil {
		return nil, err
	}
	for _, market := range msg.UpdateMarkets {
		if err := ms.UpdateMarket(ctx, market); err != nil {
			return nil, err
		}
	}
	return &types.MsgUpdateMarketsResponse{}, nil
}

func (ms msgServer) RemoveMarketAuthorities(ctx sdk.Context, msg types.MsgRemoveMarketAuthorities) (*types.MsgRemoveMarketAuthoritiesResponse, error) {
	params := ms.GetParams(ctx)
	if msg.Admin != params.Admin {
		return nil, sdkerrors.Wrapf(types.ErrInvalidAdmin, "expected %s, got %s", params.Admin, msg.Admin)
	}
	remove := make(map[string]struct{}, len(msg.RemoveAddresses))
	for _, addr := range msg.RemoveAddresses {
		if !params.IsAuthority(addr) {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "%s is not a market authority", addr)
		}
		remove[addr] = struct{}{}
	}
	kept := make([]string, 0, len(params.MarketAuthorities))
	for _, authority := range params.MarketAuthorities {
		if _, ok := remove[authority]; !ok {
			kept = append(kept, authority)
		}
	}
	params.MarketAuthorities = kept
	if err := ms.SetParams(ctx, params); err != nil {
		return nil, err
	}
	return &types.MsgRemoveMarketAuthoritiesResponse{}, nil
}

func (ms msgServer) UpdateParams(ctx sdk.Context, msg types.MsgParams) (*types.MsgParamsResponse, error) {
	if msg.Authority != ms.authority {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "expected %s, got %s", ms.authority, msg.Authority)
	}
	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgParamsResponse{}, nil
}
