package keeper

import (
	"fmt"
	"math/big"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/dex/types"
)

// Keeper runs a simplified dex: pools hold deposited liquidity and limit
// orders rest in escrow until they are cancelled.
type Keeper struct {
	key       sdk.StoreKey
	bk        types.BankKeeper
	authority string
}

func NewKeeper(key sdk.StoreKey, bk types.BankKeeper, authority string) Keeper {
	return Keeper{key: key, bk: bk, authority: authority}
}

func (k Keeper) GetAuthority() string { return k.authority }

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.key).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := codec.Unmarshal(bz, &params); err != nil {
		panic(err)
	}
	return params
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	ctx.KVStore(k.key).Set(types.ParamsKey, codec.MustMarshal(params))
	return nil
}

func (k Keeper) nextCount(ctx sdk.Context, key []byte) uint64 {
	store := ctx.KVStore(k.key)
	n := sdk.BigEndianToUint64(store.Get(key))
	store.Set(key, sdk.Uint64ToBigEndian(n+1))
	return n
}

// NewTrancheKey returns a fresh tranche key.
func (k Keeper) NewTrancheKey(ctx sdk.Context) string {
	return fmt.Sprintf("%016x", k.nextCount(ctx, types.TrancheCountKey))
}

func amountOf(s string) *big.Int {
	n, ok := types.ParseAmount(s)
	if !ok {
		return new(big.Int)
	}
	return n
}

func addAmount(a string, b *big.Int) string {
	return new(big.Int).Add(amountOf(a), b).String()
}

func subAmount(a string, b *big.Int) string {
	return new(big.Int).Sub(amountOf(a), b).String()
}
