package keeper

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/contractmanager/types"
)

// Keeper records failed contract sudo calls.
type Keeper struct {
	key         sdk.StoreKey
	authorities []string
}

// NewKeeper returns a contractmanager keeper. Any of authorities may
// update params.
func NewKeeper(key sdk.StoreKey, authorities ...string) Keeper {
	return Keeper{key: key, authorities: authorities}
}

func (k Keeper) HasAuthority(addr string) bool {
	for _, authority := range k.authorities {
		if authority == addr {
			return true
		}
	}
	return false
}

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

// GetNextFailureIDKey returns the id the next failure of address gets.
func (k Keeper) GetNextFailureIDKey(ctx sdk.Context, address string) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.key).Get(types.GetFailureCountKey(address)))
}

// AddContractFailure records a failed sudo call of address.
func (k Keeper) AddContractFailure(ctx sdk.Context, address string, sudoPayload []byte, errMsg string) types.Failure {
	store := ctx.KVStore(k.key)
	id := k.GetNextFailureIDKey(ctx, address)
	failure := types.Failure{
		Address:     address,
		Id:          id,
		SudoPayload: sudoPayload,
		Error:       errMsg,
	}
	store.Set(types.GetFailureKey(address, id), codec.MustMarshal(failure))
	store.Set(types.GetFailureCountKey(address), sdk.Uint64ToBigEndian(id+1))
	ctx.Logger().Debug("recorded contract failure", "address", address, "id", id)
	return failure
}

func (k Keeper) GetFailure(ctx sdk.Context, address string, id uint64) (types.Failure, error) {
	bz := ctx.KVStore(k.key).Get(types.GetFailureKey(address, id))
	if bz == nil {
		return types.Failure{}, sdkerrors.Wrapf(types.ErrNoFailure, "no failure found for address %s and failure id %d", address, id)
	}
	var failure types.Failure
	if err := codec.Unmarshal(bz, &failure); err != nil {
		return types.Failure{}, err
	}
	return failure, nil
}

// GetFailures returns the failures under prefix in key order.
func (k Keeper) GetFailures(ctx sdk.Context, prefix []byte) ([]types.Failure, error) {
	iter := ctx.KVStore(k.key).Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	failures := []types.Failure{}
	for ; iter.Valid(); iter.Next() {
		var failure types.Failure
		if err := codec.Unmarshal(iter.Value(), &failure); err != nil {
			return nil, err
		}
		failures = append(failures, failure)
	}
	return failures, nil
}
