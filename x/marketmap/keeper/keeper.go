package keeper

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/marketmap/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

// Keeper stores markets and notifies hooks when they change.
type Keeper struct {
	key       sdk.StoreKey
	authority string
	hooks     types.MarketMapHooks
}

// NewKeeper returns a marketmap keeper. authority may replace params.
func NewKeeper(key sdk.StoreKey, authority string) *Keeper {
	return &Keeper{key: key, authority: authority}
}

// SetHooks installs hooks once.
func (k *Keeper) SetHooks(hooks types.MarketMapHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set marketmap hooks twice")
	}
	k.hooks = hooks
	return k
}

func (k *Keeper) GetAuthority() string { return k.authority }

func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	if err := codec.Unmarshal(ctx.KVStore(k.key).Get(types.ParamsKey), &params); err != nil {
		panic(err)
	}
	return params
}

func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidParams, err.Error())
	}
	ctx.KVStore(k.key).Set(types.ParamsKey, codec.MustMarshal(params))
	return nil
}

func (k *Keeper) setLastUpdated(ctx sdk.Context) {
	ctx.KVStore(k.key).Set(types.LastUpdatedKey, sdk.Uint64ToBigEndian(uint64(ctx.BlockHeight())))
}

// GetLastUpdated returns the height of the last market change.
func (k *Keeper) GetLastUpdated(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.key).Get(types.LastUpdatedKey))
}

func (k *Keeper) HasMarket(ctx sdk.Context, cp oracletypes.CurrencyPair) bool {
	return ctx.KVStore(k.key).Has(types.MarketKey(cp))
}

func (k *Keeper) GetMarket(ctx sdk.Context, cp oracletypes.CurrencyPair) (types.Market, error) {
	bz := ctx.KVStore(k.key).Get(types.MarketKey(cp))
	if bz == nil {
		return types.Market{}, sdkerrors.Wrapf(types.ErrMarketDoesNotExist, "%s", cp)
	}
	var market types.Market
	if err := codec.Unmarshal(bz, &market); err != nil {
		return types.Market{}, err
	}
	return market, nil
}

func (k *Keeper) setMarket(ctx sdk.Context, market types.Market) {
	ctx.KVStore(k.key).Set(types.MarketKey(market.Ticker.CurrencyPair), codec.MustMarshal(market))
	k.setLastUpdated(ctx)
}

// CreateMarket stores a new market and runs the creation hook.
func (k *Keeper) CreateMarket(ctx sdk.Context, market types.Market) error {
	if k.HasMarket(ctx, market.Ticker.CurrencyPair) {
		return sdkerrors.Wrapf(types.ErrMarketAlreadyExists, "%s", market.Ticker)
	}
	k.setMarket(ctx, market)
	if k.hooks != nil {
		return k.hooks.AfterMarketCreated(ctx, market)
	}
	return nil
}

// UpdateMarket replaces an existing market and runs the update hook.
func (k *Keeper) UpdateMarket(ctx sdk.Context, market types.Market) error {
	if !k.HasMarket(ctx, market.Ticker.CurrencyPair) {
		return sdkerrors.Wrapf(types.ErrMarketDoesNotExist, "%s", market.Ticker)
	}
	k.setMarket(ctx, market)
	if k.hooks != nil {
		return k.hooks.AfterMarketUpdated(ctx, market)
	}
	return nil
}

// GetAllMarkets returns every market ordered by ticker.
func (k *Keeper) GetAllMarkets(ctx sdk.Context) ([]types.Market, error) {
	iter := ctx.KVStore(k.key).Iterator(types.MarketsPrefix, sdk.PrefixEnd(types.MarketsPrefix))
	defer iter.Close()
	markets := []types.Market{}
	for ; iter.Valid(); iter.Next() {
		var market types.Market
		if err := codec.Unmarshal(iter.Value(), &market); err != nil {
			return nil, err
		}
		markets = append(markets, market)
	}
	return markets, nil
}
