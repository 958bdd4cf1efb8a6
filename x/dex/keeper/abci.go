package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/dex/types"
)

// PurgeExpiredLimitOrders moves tranches whose expiration time has passed
// to the inactive store, at most GoodTilPurgeAllowance per block. Their
// owners can still cancel to recover the maker side.
func (k Keeper) PurgeExpiredLimitOrders(ctx sdk.Context) {
	now := ctx.BlockTime().Unix()
	allowance := k.GetParams(ctx).GoodTilPurgeAllowance

	var expired []types.LimitOrderTranche
	k.IterateTranches(ctx, types.LimitOrderTrancheKeyPrefix, func(tranche types.LimitOrderTranche) bool {
		if uint64(len(expired)) >= allowance {
			return true
		}
		if tranche.HasExpiration() && tranche.ExpirationTime <= now {
			expired = append(expired, tranche)
		}
		return false
	})

	for _, tranche := range expired {
		k.RemoveLimitOrderTranche(ctx, tranche.Key)
		k.SetInactiveLimitOrderTranche(ctx, tranche)
	}
	if len(expired) > 0 {
		ctx.Logger().Debug("purged expired limit orders", "count", len(expired))
	}
}

// EndBlocker purges expired orders and resets the JIT counter.
func (k Keeper) EndBlocker(ctx sdk.Context) {
	k.PurgeExpiredLimitOrders(ctx)
	ctx.KVStore(k.key).Delete(types.JITsInBlockKey)
}
