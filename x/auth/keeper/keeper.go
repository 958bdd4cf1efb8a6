package keeper

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/auth/types"
)

// AccountKeeper stores accounts, module accounts and the global account
// number.
type AccountKeeper struct {
	key          sdk.StoreKey
	bech32Prefix string
	permAddrs    map[string][]string
}

// NewAccountKeeper returns an account keeper. maccPerms lists the module
// accounts and their permissions.
func NewAccountKeeper(key sdk.StoreKey, bech32Prefix string, maccPerms map[string][]string) AccountKeeper {
	perms := make(map[string][]string, len(maccPerms))
	for name, p := range maccPerms {
		perms[name] = append([]string{}, p...)
	}
	return AccountKeeper{key: key, bech32Prefix: bech32Prefix, permAddrs: perms}
}

// Bech32Prefix is the human readable prefix of account addresses.
func (ak AccountKeeper) Bech32Prefix() string { return ak.bech32Prefix }

// GetAccount returns the account at addr.
func (ak AccountKeeper) GetAccount(ctx sdk.Context, addr string) (types.BaseAccount, bool) {
	bz := ctx.KVStore(ak.key).Get(types.AddressStoreKey(addr))
	if bz == nil {
		return types.BaseAccount{}, false
	}
	var acc types.BaseAccount
	if err := codec.Unmarshal(bz, &acc); err != nil {
		panic(err)
	}
	return acc, true
}

// HasAccount reports whether an account exists at addr.
func (ak AccountKeeper) HasAccount(ctx sdk.Context, addr string) bool {
	return ctx.KVStore(ak.key).Has(types.AddressStoreKey(addr))
}

// SetAccount stores acc.
func (ak AccountKeeper) SetAccount(ctx sdk.Context, acc types.BaseAccount) {
	ctx.KVStore(ak.key).Set(types.AddressStoreKey(acc.Address), codec.MustMarshal(acc))
}

// NewAccountWithAddress creates and stores an account at addr with the
// next account number.
func (ak AccountKeeper) NewAccountWithAddress(ctx sdk.Context, addr string) types.BaseAccount {
	acc := types.BaseAccount{Address: addr, AccountNumber: ak.GetNextAccountNumber(ctx)}
	ak.SetAccount(ctx, acc)
	return acc
}

// EnsureAccount returns the account at addr, creating it if needed.
func (ak AccountKeeper) EnsureAccount(ctx sdk.Context, addr string) types.BaseAccount {
	if acc, ok := ak.GetAccount(ctx, addr); ok {
		return acc
	}
	return ak.NewAccountWithAddress(ctx, addr)
}

// GetNextAccountNumber returns and increments the global account number.
func (ak AccountKeeper) GetNextAccountNumber(ctx sdk.Context) uint64 {
	store := ctx.KVStore(ak.key)
	n := sdk.BigEndianToUint64(store.Get(types.GlobalAccountNumberKey))
	store.Set(types.GlobalAccountNumberKey, sdk.Uint64ToBigEndian(n+1))
	return n
}

// GetSequence returns the next sequence of the account at addr.
func (ak AccountKeeper) GetSequence(ctx sdk.Context, addr string) (uint64, error) {
	acc, ok := ak.GetAccount(ctx, addr)
	if !ok {
		return 0, types.ErrAccountNotFound.Wrapf("account %s does not exist", addr)
	}
	return acc.Sequence, nil
}

// IterateAccounts calls cb for every account in address order until cb
// returns true.
func (ak AccountKeeper) IterateAccounts(ctx sdk.Context, cb func(acc types.BaseAccount) (stop bool)) {
	store := ctx.KVStore(ak.key)
	iter := store.Iterator(types.AddressStoreKeyPrefix, sdk.PrefixEnd(types.AddressStoreKeyPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var acc types.BaseAccount
		if err := codec.Unmarshal(iter.Value(), &acc); err != nil {
			panic(err)
		}
		if cb(acc) {
			break
		}
	}
}

// GetModuleAddress returns the address of the named module account.
func (ak AccountKeeper) GetModuleAddress(name string) string {
	return sdk.ModuleAddress(ak.bech32Prefix, name)
}

// GetModuleAccount returns the named module account, creating it on first
// use.
func (ak AccountKeeper) GetModuleAccount(ctx sdk.Context, name string) types.ModuleAccount {
	store := ctx.KVStore(ak.key)
	if bz := store.Get(types.ModuleAccountStoreKey(name)); bz != nil {
		var macc types.ModuleAccount
		if err := codec.Unmarshal(bz, &macc); err != nil {
			panic(err)
		}
		return macc
	}

	macc := types.ModuleAccount{
		BaseAccount: ak.EnsureAccount(ctx, ak.GetModuleAddress(name)),
		Name:        name,
		Permissions: ak.permAddrs[name],
	}
	store.Set(types.ModuleAccountStoreKey(name), codec.MustMarshal(macc))
	return macc
}

// IsModuleAccount reports whether addr belongs to a known module.
func (ak AccountKeeper) IsModuleAccount(addr string) bool {
	for name := range ak.permAddrs {
		if ak.GetModuleAddress(name) == addr {
			return true
		}
	}
	return false
}

// GetParams returns the auth params.
func (ak AccountKeeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(ak.key).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := codec.Unmarshal(bz, &params); err != nil {
		panic(err)
	}
	return params
}

// SetParams stores params.
func (ak AccountKeeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	ctx.KVStore(ak.key).Set(types.ParamsKey, codec.MustMarshal(params))
	return nil
}
