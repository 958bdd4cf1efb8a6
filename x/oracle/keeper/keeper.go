package keeper

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/oracle/types"
)

// Keeper stores currency pairs and their latest quote prices.
type Keeper struct {
	key sdk.StoreKey
}

func NewKeeper(key sdk.StoreKey) Keeper {
	return Keeper{key: key}
}

func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	for _, cpg := range gs.CurrencyPairGenesis {
		if err := k.CreateCurrencyPair(ctx, cpg.CurrencyPair, cpg.Decimals); err != nil {
			return err
		}
		if cpg.Price == "" {
			continue
		}
		state, _ := k.getCurrencyPairState(ctx, cpg.CurrencyPair)
		state.Price = types.QuotePrice{Price: cpg.Price}
		state.HasPrice = true
		k.setCurrencyPairState(ctx, cpg.CurrencyPair, state)
	}
	return nil
}

func (k Keeper) nextID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.key)
	id := sdk.BigEndianToUint64(store.Get(types.UniqueIDKey))
	store.Set(types.UniqueIDKey, sdk.Uint64ToBigEndian(id+1))
	return id
}

// CreateCurrencyPair registers cp with the next free id and no price.
func (k Keeper) CreateCurrencyPair(ctx sdk.Context, cp types.CurrencyPair, decimals uint64) error {
	if err := cp.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidCurrencyPair, err.Error())
	}
	if k.HasCurrencyPair(ctx, cp) {
		return sdkerrors.Wrapf(types.ErrCurrencyPairAlreadyExist, "%s", cp)
	}
	id := k.nextID(ctx)
	k.setCurrencyPairState(ctx, cp, types.CurrencyPairState{Id: id, Decimals: decimals})
	ctx.KVStore(k.key).Set(types.GetCurrencyPairIDKey(id), []byte(cp.String()))
	ctx.Logger().Debug("created currency pair", "pair", cp.String(), "id", id)
	return nil
}

func (k Keeper) HasCurrencyPair(ctx sdk.Context, cp types.CurrencyPair) bool {
	return ctx.KVStore(k.key).Has(types.GetCurrencyPairKey(cp))
}

func (k Keeper) getCurrencyPairState(ctx sdk.Context, cp types.CurrencyPair) (types.CurrencyPairState, error) {
	bz := ctx.KVStore(k.key).Get(types.GetCurrencyPairKey(cp))
	if bz == nil {
		return types.CurrencyPairState{}, sdkerrors.Wrapf(types.ErrCurrencyPairNotFound, "%s", cp)
	}
	var state types.CurrencyPairState
	if err := codec.Unmarshal(bz, &state); err != nil {
		return types.CurrencyPairState{}, err
	}
	return state, nil
}

func (k Keeper) setCurrencyPairState(ctx sdk.Context, cp types.CurrencyPair, state types.CurrencyPairState) {
	ctx.KVStore(k.key).Set(types.GetCurrencyPairKey(cp), codec.MustMarshal(state))
}

// GetCurrencyPairFromID returns the pair registered under id.
func (k Keeper) GetCurrencyPairFromID(ctx sdk.Context, id uint64) (types.CurrencyPair, bool) {
	bz := ctx.KVStore(k.key).Get(types.GetCurrencyPairIDKey(id))
	if bz == nil {
		return types.CurrencyPair{}, false
	}
	cp, err := types.CurrencyPairFromString(string(bz))
	if err != nil {
		return types.CurrencyPair{}, false
	}
	return cp, true
}

// GetIDForCurrencyPair returns the numeric id of cp.
func (k Keeper) GetIDForCurrencyPair(ctx sdk.Context, cp types.CurrencyPair) (uint64, bool) {
	state, err := k.getCurrencyPairState(ctx, cp)
	if err != nil {
		return 0, false
	}
	return state.Id, true
}

// SetPriceForCurrencyPair stores price for cp and bumps its nonce.
func (k Keeper) SetPriceForCurrencyPair(ctx sdk.Context, cp types.CurrencyPair, price types.QuotePrice) error {
	if err := types.ValidatePrice(price.Price); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidPrice, err.Error())
	}
	state, err := k.getCurrencyPairState(ctx, cp)
	if err != nil {
		return err
	}
	state.Price = price
	state.HasPrice = true
	state.Nonce++
	k.setCurrencyPairState(ctx, cp, state)
	ctx.Logger().Debug("set price", "pair", cp.String(), "price", price.Price, "nonce", state.Nonce)
	return nil
}

// GetPriceWithNonceForCurrencyPair returns the latest price of cp with its
// nonce, id and decimals. A pair that was never priced reports "0".
func (k Keeper) GetPriceWithNonceForCurrencyPair(ctx sdk.Context, cp types.CurrencyPair) (types.GetPriceResponse, error) {
	state, err := k.getCurrencyPairState(ctx, cp)
	if err != nil {
		return types.GetPriceResponse{}, err
	}
	price := state.Price
	if !state.HasPrice {
		price = types.QuotePrice{Price: "0"}
	}
	return types.GetPriceResponse{
		Price:    price,
		Nonce:    state.Nonce,
		Decimals: state.Decimals,
		Id:       state.Id,
	}, nil
}

// IterateCurrencyPairs visits pairs in id order until cb returns true.
func (k Keeper) IterateCurrencyPairs(ctx sdk.Context, cb func(id uint64, cp types.CurrencyPair) (stop bool)) {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(types.CurrencyPairIDKeyPrefix, sdk.PrefixEnd(types.CurrencyPairIDKeyPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		id := sdk.BigEndianToUint64(iter.Key()[len(types.CurrencyPairIDKeyPrefix):])
		cp, err := types.CurrencyPairFromString(string(iter.Value()))
		if err != nil {
			panic(err)
		}
		if cb(id, cp) {
			return
		}
	}
}

func (k Keeper) GetAllCurrencyPairs(ctx sdk.Context) []types.CurrencyPair {
	pairs := []types.CurrencyPair{}
	k.IterateCurrencyPairs(ctx, func(_ uint64, cp types.CurrencyPair) bool {
		pairs = append(pairs, cp)
		return false
	})
	return pairs
}

func (k Keeper) GetCurrencyPairMapping(ctx sdk.Context) []types.CurrencyPairMapping {
	mapping := []types.CurrencyPairMapping{}
	k.IterateCurrencyPairs(ctx, func(id uint64, cp types.CurrencyPair) bool {
		mapping = append(mapping, types.CurrencyPairMapping{Id: id, CurrencyPair: cp})
		return false
	})
	return mapping
}
