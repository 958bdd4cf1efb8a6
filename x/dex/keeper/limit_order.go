package keeper

import (
	"math/big"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/dex/types"
)

func (k Keeper) getTranche(ctx sdk.Context, base []byte, key types.LimitOrderTrancheKey) (types.LimitOrderTranche, bool) {
	bz := ctx.KVStore(k.key).Get(types.TrancheKey(base, key))
	if bz == nil {
		return types.LimitOrderTranche{}, false
	}
	var tranche types.LimitOrderTranche
	if err := codec.Unmarshal(bz, &tranche); err != nil {
		panic(err)
	}
	return tranche, true
}

func (k Keeper) GetLimitOrderTranche(ctx sdk.Context, key types.LimitOrderTrancheKey) (types.LimitOrderTranche, bool) {
	return k.getTranche(ctx, types.LimitOrderTrancheKeyPrefix, key)
}

func (k Keeper) GetInactiveLimitOrderTranche(ctx sdk.Context, key types.LimitOrderTrancheKey) (types.LimitOrderTranche, bool) {
	return k.getTranche(ctx, types.InactiveLimitOrderTrancheKeyPrefix, key)
}

func (k Keeper) SetLimitOrderTranche(ctx sdk.Context, tranche types.LimitOrderTranche) {
	ctx.KVStore(k.key).Set(types.TrancheKey(types.LimitOrderTrancheKeyPrefix, tranche.Key), codec.MustMarshal(tranche))
}

func (k Keeper) SetInactiveLimitOrderTranche(ctx sdk.Context, tranche types.LimitOrderTranche) {
	ctx.KVStore(k.key).Set(types.TrancheKey(types.InactiveLimitOrderTrancheKeyPrefix, tranche.Key), codec.MustMarshal(tranche))
}

func (k Keeper) RemoveLimitOrderTranche(ctx sdk.Context, key types.LimitOrderTrancheKey) {
	ctx.KVStore(k.key).Delete(types.TrancheKey(types.LimitOrderTrancheKeyPrefix, key))
}

func (k Keeper) RemoveInactiveLimitOrderTranche(ctx sdk.Context, key types.LimitOrderTrancheKey) {
	ctx.KVStore(k.key).Delete(types.TrancheKey(types.InactiveLimitOrderTrancheKeyPrefix, key))
}

// IterateTranches visits the tranches stored under prefix in key order.
func (k Keeper) IterateTranches(ctx sdk.Context, prefix []byte, cb func(tranche types.LimitOrderTranche) (stop bool)) {
	iter := ctx.KVStore(k.key).Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var tranche types.LimitOrderTranche
		if err := codec.Unmarshal(iter.Value(), &tranche); err != nil {
			panic(err)
		}
		if cb(tranche) {
			return
		}
	}
}

// GetPlaceTranche returns the open tranche at tick that new
// non-expiring orders join.
func (k Keeper) GetPlaceTranche(ctx sdk.Context, tradePairID types.TradePairID, tick int64) (types.LimitOrderTranche, bool) {
	var (
		found types.LimitOrderTranche
		ok    bool
	)
	prefix := append(types.TrancheTradePairPrefix(types.LimitOrderTrancheKeyPrefix, tradePairID), types.TickIndexToBytes(tick)...)
	k.IterateTranches(ctx, prefix, func(tranche types.LimitOrderTranche) bool {
		if tranche.HasExpiration() {
			return false
		}
		found, ok = tranche, true
		return true
	})
	return found, ok
}

func (k Keeper) GetLimitOrderTrancheUser(ctx sdk.Context, address, trancheKey string) (types.LimitOrderTrancheUser, bool) {
	bz := ctx.KVStore(k.key).Get(types.TrancheUserKey(address, trancheKey))
	if bz == nil {
		return types.LimitOrderTrancheUser{}, false
	}
	var user types.LimitOrderTrancheUser
	if err := codec.Unmarshal(bz, &user); err != nil {
		panic(err)
	}
	return user, true
}

func (k Keeper) SetLimitOrderTrancheUser(ctx sdk.Context, user types.LimitOrderTrancheUser) {
	ctx.KVStore(k.key).Set(types.TrancheUserKey(user.Address, user.TrancheKey), codec.MustMarshal(user))
}

func (k Keeper) RemoveLimitOrderTrancheUser(ctx sdk.Context, user types.LimitOrderTrancheUser) {
	ctx.KVStore(k.key).Delete(types.TrancheUserKey(user.Address, user.TrancheKey))
}

// IterateLimitOrderTrancheUsers visits the tranche users under prefix.
func (k Keeper) IterateLimitOrderTrancheUsers(ctx sdk.Context, prefix []byte, cb func(user types.LimitOrderTrancheUser) (stop bool)) {
	iter := ctx.KVStore(k.key).Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var user types.LimitOrderTrancheUser
		if err := codec.Unmarshal(iter.Value(), &user); err != nil {
			panic(err)
		}
		if cb(user) {
			return
		}
	}
}

func (k Keeper) jitsInBlock(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.key).Get(types.JITsInBlockKey))
}

// PlaceLimitOrderCore escrows amountIn of the maker denom and rests it in
// a tranche at tick. Taker-only orders never rest: fill-or-kill orders fail
// and immediate-or-cancel orders return without moving funds.
func (k Keeper) PlaceLimitOrderCore(
	ctx sdk.Context,
	tokenIn, tokenOut string,
	amountIn *big.Int,
	tick int64,
	orderType types.LimitOrderType,
	expirationTime int64,
	callerAddr, receiverAddr string,
) (trancheKey string, totalIn sdk.Coin, err error) {
	tradePairID := types.TradePairID{MakerDenom: tokenIn, TakerDenom: tokenOut}

	switch {
	case orderType == types.FILL_OR_KILL:
		return "", sdk.Coin{}, types.ErrFoKLimitOrderNotFilled
	case orderType.IsTakerOnly():
		return "", sdk.NewCoin(tokenIn, 0), nil
	case orderType.IsGoodTil() && expirationTime <= ctx.BlockTime().Unix():
		return "", sdk.Coin{}, sdkerrors.Wrapf(types.ErrExpirationTimeInPast, "current block time %d, expiration %d", ctx.BlockTime().Unix(), expirationTime)
	}

	var tranche types.LimitOrderTranche
	found := false
	switch {
	case orderType.IsJIT():
		params := k.GetParams(ctx)
		jits := k.jitsInBlock(ctx)
		if jits >= params.MaxJitsPerBlock {
			return "", sdk.Coin{}, types.ErrOverJITPerBlockLimit
		}
		ctx.KVStore(k.key).Set(types.JITsInBlockKey, sdk.Uint64ToBigEndian(jits+1))
		expirationTime = ctx.BlockTime().Unix()
	case orderType == types.GOOD_TIL_CANCELLED:
		tranche, found = k.GetPlaceTranche(ctx, tradePairID, tick)
	}
	if !found {
		tranche = types.LimitOrderTranche{
			Key: types.LimitOrderTrancheKey{
				TradePairId:           tradePairID,
				TickIndexTakerToMaker: tick,
				TrancheKey:            k.NewTrancheKey(ctx),
			},
			ReservesMakerDenom: "0",
			ReservesTakerDenom: "0",
			TotalMakerDenom:    "0",
			TotalTakerDenom:    "0",
			ExpirationTime:     expirationTime,
		}
	}
	trancheKey = tranche.Key.TrancheKey

	escrow := sdk.NewCoins(sdk.NewCoinFromInt(tokenIn, amountIn))
	if err := k.bk.SendCoinsFromAccountToModule(ctx, callerAddr, types.ModuleName, escrow); err != nil {
		return "", sdk.Coin{}, err
	}

	tranche.ReservesMakerDenom = addAmount(tranche.ReservesMakerDenom, amountIn)
	tranche.TotalMakerDenom = addAmount(tranche.TotalMakerDenom, amountIn)
	k.SetLimitOrderTranche(ctx, tranche)

	user, userFound := k.GetLimitOrderTrancheUser(ctx, receiverAddr, trancheKey)
	if !userFound {
		user = types.LimitOrderTrancheUser{
			TradePairId:           tradePairID,
			TickIndexTakerToMaker: tick,
			TrancheKey:            trancheKey,
			Address:               receiverAddr,
			SharesOwned:           "0",
			SharesWithdrawn:       "0",
			SharesCancelled:       "0",
			OrderType:             orderType,
		}
	}
	user.SharesOwned = addAmount(user.SharesOwned, amountIn)
	k.SetLimitOrderTrancheUser(ctx, user)

	ctx.EventManager().EmitEvent(types.CreatePlaceLimitOrderEvent(callerAddr, receiverAddr, tokenIn, tokenOut, amountIn, tick, orderType, trancheKey))
	return trancheKey, sdk.NewCoinFromInt(tokenIn, amountIn), nil
}

// CancelLimitOrderCore refunds the unfilled remainder of the order of
// callerAddr in trancheKey.
func (k Keeper) CancelLimitOrderCore(ctx sdk.Context, trancheKey, callerAddr string) (takerCoinOut, makerCoinOut sdk.Coin, err error) {
	user, found := k.GetLimitOrderTrancheUser(ctx, callerAddr, trancheKey)
	if !found {
		return sdk.Coin{}, sdk.Coin{}, types.ErrValidLimitOrderTrancheNotFound
	}
	key := types.LimitOrderTrancheKey{
		TradePairId:           user.TradePairId,
		TickIndexTakerToMaker: user.TickIndexTakerToMaker,
		TrancheKey:            trancheKey,
	}
	tranche, active := k.GetLimitOrderTranche(ctx, key)
	if !active {
		if tranche, found = k.GetInactiveLimitOrderTranche(ctx, key); !found {
			return sdk.Coin{}, sdk.Coin{}, types.ErrValidLimitOrderTrancheNotFound
		}
	}

	remaining := amountOf(user.SharesOwned)
	remaining.Sub(remaining, amountOf(user.SharesWithdrawn))
	remaining.Sub(remaining, amountOf(user.SharesCancelled))
	if remaining.Sign() <= 0 {
		return sdk.Coin{}, sdk.Coin{}, types.ErrActiveLimitOrderNotFound
	}

	makerCoinOut = sdk.NewCoinFromInt(user.TradePairId.MakerDenom, remaining)
	if err := k.bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, callerAddr, sdk.NewCoins(makerCoinOut)); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	tranche.ReservesMakerDenom = subAmount(tranche.ReservesMakerDenom, remaining)
	switch {
	case amountOf(tranche.ReservesMakerDenom).Sign() > 0:
		if active {
			k.SetLimitOrderTranche(ctx, tranche)
		} else {
			k.SetInactiveLimitOrderTranche(ctx, tranche)
		}
	case active:
		k.RemoveLimitOrderTranche(ctx, key)
	default:
		k.RemoveInactiveLimitOrderTranche(ctx, key)
	}
	k.RemoveLimitOrderTrancheUser(ctx, user)

	ctx.EventManager().EmitEvent(types.CreateCancelLimitOrderEvent(callerAddr, user.TradePairId, remaining, trancheKey))
	return sdk.NewCoin(user.TradePairId.TakerDenom, 0), makerCoinOut, nil
}
