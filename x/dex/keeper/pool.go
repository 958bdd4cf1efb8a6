package keeper

import (
	"math/big"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/dex/types"
)

func (k Keeper) GetPool(ctx sdk.Context, pairID types.PairID, centerTick int64, fee uint64) (types.Pool, bool) {
	bz := ctx.KVStore(k.key).Get(types.PoolKey(pairID, centerTick, fee))
	if bz == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	if err := codec.Unmarshal(bz, &pool); err != nil {
		panic(err)
	}
	return pool, true
}

func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) {
	key := types.PoolKey(pool.PairId, pool.CenterTickIndex, pool.Fee)
	store := ctx.KVStore(k.key)
	store.Set(key, codec.MustMarshal(pool))
	store.Set(types.PoolIDKey(pool.Id), key)
}

// GetOrInitPool returns the pool at centerTick and fee, creating an empty
// one with the next id.
func (k Keeper) GetOrInitPool(ctx sdk.Context, pairID types.PairID, centerTick int64, fee uint64) types.Pool {
	if pool, found := k.GetPool(ctx, pairID, centerTick, fee); found {
		return pool
	}
	pool := types.Pool{
		Id:              k.nextCount(ctx, types.PoolCountKey),
		PairId:          pairID,
		CenterTickIndex: centerTick,
		Fee:             fee,
		Reserves0:       "0",
		Reserves1:       "0",
		TotalShares:     "0",
	}
	k.SetPool(ctx, pool)
	return pool
}

func (k Keeper) GetPoolByID(ctx sdk.Context, id uint64) (types.Pool, bool) {
	store := ctx.KVStore(k.key)
	key := store.Get(types.PoolIDKey(id))
	if key == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	if err := codec.Unmarshal(store.Get(key), &pool); err != nil {
		panic(err)
	}
	return pool, true
}

// IteratePools visits the pools under prefix in key order.
func (k Keeper) IteratePools(ctx sdk.Context, prefix []byte, cb func(pool types.Pool) (stop bool)) {
	iter := ctx.KVStore(k.key).Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var pool types.Pool
		if err := codec.Unmarshal(iter.Value(), &pool); err != nil {
			panic(err)
		}
		if cb(pool) {
			return
		}
	}
}

// DepositCore adds liquidity to one pool per index and issues pool shares
// to receiver. Ticks and amounts are normalized to token0.
func (k Keeper) DepositCore(
	ctx sdk.Context,
	pairID types.PairID,
	callerAddr, receiverAddr string,
	amounts0, amounts1 []*big.Int,
	tickIndexes []int64,
	fees []uint64,
) (deposited0, deposited1 []*big.Int, sharesIssued sdk.Coins, err error) {
	params := k.GetParams(ctx)
	total0, total1 := new(big.Int), new(big.Int)
	sharesIssued = sdk.Coins{}

	for i, fee := range fees {
		if !params.HasFeeTier(fee) {
			return nil, nil, nil, sdkerrors.Wrapf(types.ErrInvalidFee, "fee %d", fee)
		}
		center := tickIndexes[i]
		if types.IsTickOutOfRange(center-int64(fee)) || types.IsTickOutOfRange(center+int64(fee)) {
			return nil, nil, nil, types.ErrTickOutsideRange
		}
		pool := k.GetOrInitPool(ctx, pairID, center, fee)

		shares := new(big.Int).Add(amounts0[i], amounts1[i])
		pool.Reserves0 = addAmount(pool.Reserves0, amounts0[i])
		pool.Reserves1 = addAmount(pool.Reserves1, amounts1[i])
		pool.TotalShares = addAmount(pool.TotalShares, shares)
		k.SetPool(ctx, pool)

		total0.Add(total0, amounts0[i])
		total1.Add(total1, amounts1[i])
		deposited0 = append(deposited0, amounts0[i])
		deposited1 = append(deposited1, amounts1[i])
		sharesIssued = sharesIssued.Add(sdk.NewCoinFromInt(types.PoolDenom(pool.Id), shares))

		ctx.EventManager().EmitEvent(types.CreateDepositEvent(callerAddr, receiverAddr, pool, amounts0[i], amounts1[i], shares))
	}

	escrow := sdk.NewCoins(sdk.NewCoinFromInt(pairID.Token0, total0), sdk.NewCoinFromInt(pairID.Token1, total1))
	if err := k.bk.SendCoinsFromAccountToModule(ctx, callerAddr, types.ModuleName, escrow); err != nil {
		return nil, nil, nil, err
	}
	if err := k.bk.MintCoins(ctx, types.ModuleName, sharesIssued); err != nil {
		return nil, nil, nil, err
	}
	if err := k.bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiverAddr, sharesIssued); err != nil {
		return nil, nil, nil, err
	}
	return deposited0, deposited1, sharesIssued, nil
}

// WithdrawCore burns shares of callerAddr and pays the pro rata reserves
// of each pool to receiverAddr.
func (k Keeper) WithdrawCore(
	ctx sdk.Context,
	pairID types.PairID,
	callerAddr, receiverAddr string,
	sharesToRemove []*big.Int,
	tickIndexes []int64,
	fees []uint64,
) (withdrawn0, withdrawn1 *big.Int, sharesBurned sdk.Coins, err error) {
	withdrawn0, withdrawn1 = new(big.Int), new(big.Int)
	sharesBurned = sdk.Coins{}

	for i, fee := range fees {
		pool, found := k.GetPool(ctx, pairID, tickIndexes[i], fee)
		if !found {
			return nil, nil, nil, sdkerrors.Wrapf(types.ErrValidPoolNotFound, "pair %s tick %d fee %d", pairID, tickIndexes[i], fee)
		}
		shares := sharesToRemove[i]
		denom := types.PoolDenom(pool.Id)
		owned := new(big.Int).Sub(k.bk.GetBalance(ctx, callerAddr, denom).AmountOf(), sharesBurned.AmountOf(denom))
		if owned.Cmp(shares) < 0 {
			return nil, nil, nil, sdkerrors.Wrapf(types.ErrInsufficientShares, "%s does not have %s shares of type %s", callerAddr, shares, denom)
		}

		totalShares := amountOf(pool.TotalShares)
		out0 := new(big.Int).Quo(new(big.Int).Mul(amountOf(pool.Reserves0), shares), totalShares)
		out1 := new(big.Int).Quo(new(big.Int).Mul(amountOf(pool.Reserves1), shares), totalShares)
		pool.Reserves0 = subAmount(pool.Reserves0, out0)
		pool.Reserves1 = subAmount(pool.Reserves1, out1)
		pool.TotalShares = subAmount(pool.TotalShares, shares)
		k.SetPool(ctx, pool)

		withdrawn0.Add(withdrawn0, out0)
		withdrawn1.Add(withdrawn1, out1)
		sharesBurned = sharesBurned.Add(sdk.NewCoinFromInt(denom, shares))

		ctx.EventManager().EmitEvent(types.CreateWithdrawEvent(callerAddr, receiverAddr, pool, out0, out1, shares))
	}

	if err := k.bk.SendCoinsFromAccountToModule(ctx, callerAddr, types.ModuleName, sharesBurned); err != nil {
		return nil, nil, nil, err
	}
	if err := k.bk.BurnCoins(ctx, types.ModuleName, sharesBurned); err != nil {
		return nil, nil, nil, err
	}
	payout := sdk.NewCoins(sdk.NewCoinFromInt(pairID.Token0, withdrawn0), sdk.NewCoinFromInt(pairID.Token1, withdrawn1))
	if err := k.bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiverAddr, payout); err != nil {
		return nil, nil, nil, err
	}
	return withdrawn0, withdrawn1, sharesBurned, nil
}
