package keeper

import (
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/libs/store"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/tokenfactory/types"
)

type Keeper struct {
	key       sdk.StoreKey
	ak        types.AccountKeeper
	bk        types.BankKeeper
	authority string
}

// NewKeeper returns a tokenfactory keeper. authority may update params.
func NewKeeper(key sdk.StoreKey, ak types.AccountKeeper, bk types.BankKeeper, authority string) Keeper {
	return Keeper{key: key, ak: ak, bk: bk, authority: authority}
}

func (k Keeper) GetAuthority() string { return k.authority }

// GetDenomPrefixStore returns the substore of denom.
func (k Keeper) GetDenomPrefixStore(ctx sdk.Context, denom string) store.KVStore {
	return store.NewPrefixStore(ctx.KVStore(k.key), types.GetDenomPrefixStore(denom))
}

// GetCreatorPrefixStore returns the substore of creator.
func (k Keeper) GetCreatorPrefixStore(ctx sdk.Context, creator string) store.KVStore {
	return store.NewPrefixStore(ctx.KVStore(k.key), types.GetCreatorPrefix(creator))
}

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.key).Get([]byte(types.ParamsPrefixKey))
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
	ctx.KVStore(k.key).Set([]byte(types.ParamsPrefixKey), codec.MustMarshal(params))
	return nil
}

// GetAuthorityMetadata returns the authority metadata of denom.
func (k Keeper) GetAuthorityMetadata(ctx sdk.Context, denom string) (types.DenomAuthorityMetadata, error) {
	bz := k.GetDenomPrefixStore(ctx, denom).Get([]byte(types.DenomAuthorityMetadataKey))
	if bz == nil {
		return types.DenomAuthorityMetadata{}, types.ErrDenomDoesNotExist.Wrapf("denom: %s", denom)
	}
	var metadata types.DenomAuthorityMetadata
	if err := codec.Unmarshal(bz, &metadata); err != nil {
		return types.DenomAuthorityMetadata{}, err
	}
	return metadata, nil
}

func (k Keeper) setAuthorityMetadata(ctx sdk.Context, denom string, metadata types.DenomAuthorityMetadata) error {
	if err := metadata.Validate(); err != nil {
		return err
	}
	k.GetDenomPrefixStore(ctx, denom).Set([]byte(types.DenomAuthorityMetadataKey), codec.MustMarshal(metadata))
	return nil
}

func (k Keeper) setAdmin(ctx sdk.Context, denom, admin string) error {
	metadata, err := k.GetAuthorityMetadata(ctx, denom)
	if err != nil {
		return err
	}
	metadata.Admin = admin
	return k.setAuthorityMetadata(ctx, denom, metadata)
}

func (k Keeper) addDenomFromCreator(ctx sdk.Context, creator, denom string) {
	k.GetCreatorPrefixStore(ctx, creator).Set([]byte(denom), []byte(denom))
}

// GetDenomsFromCreator returns the denoms created by creator in order.
func (k Keeper) GetDenomsFromCreator(ctx sdk.Context, creator string) []string {
	prefixStore := k.GetCreatorPrefixStore(ctx, creator)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	denoms := []string{}
	for ; iter.Valid(); iter.Next() {
		denoms = append(denoms, string(iter.Value()))
	}
	return denoms
}
