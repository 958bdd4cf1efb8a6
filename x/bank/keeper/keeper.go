package keeper

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	authtypes "github.com/okx/testtube/x/auth/types"
	"github.com/okx/testtube/x/bank/types"
)

// BaseKeeper manages balances, supply and denom metadata.
type BaseKeeper struct {
	key       sdk.StoreKey
	ak        authkeeper.AccountKeeper
	authority string
}

// NewBaseKeeper returns a bank keeper. authority may update params.
func NewBaseKeeper(key sdk.StoreKey, ak authkeeper.AccountKeeper, authority string) BaseKeeper {
	return BaseKeeper{key: key, ak: ak, authority: authority}
}

// GetAuthority returns the address allowed to update params.
func (k BaseKeeper) GetAuthority() string { return k.authority }

// GetAllBalances returns every coin held by addr.
func (k BaseKeeper) GetAllBalances(ctx sdk.Context, addr string) sdk.Coins {
	bz := ctx.KVStore(k.key).Get(types.AddressBalanceKey(addr))
	var coins sdk.Coins
	if err := codec.Unmarshal(bz, &coins); err != nil {
		panic(err)
	}
	if coins == nil {
		return sdk.Coins{}
	}
	return coins
}

// GetBalance returns the amount of denom held by addr.
func (k BaseKeeper) GetBalance(ctx sdk.Context, addr, denom string) sdk.Coin {
	return sdk.NewCoinFromInt(denom, k.GetAllBalances(ctx, addr).AmountOf(denom))
}

func (k BaseKeeper) setBalances(ctx sdk.Context, addr string, coins sdk.Coins) {
	store := ctx.KVStore(k.key)
	if len(coins) == 0 {
		store.Delete(types.AddressBalanceKey(addr))
		return
	}
	store.Set(types.AddressBalanceKey(addr), codec.MustMarshal(coins))
}

func (k BaseKeeper) subUnlockedCoins(ctx sdk.Context, addr string, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	balance := k.GetAllBalances(ctx, addr)
	remaining, negative := balance.SafeSub(amt)
	if negative {
		spendable := sdk.Coins{}
		for _, c := range amt {
			spendable = spendable.Add(sdk.NewCoinFromInt(c.Denom, balance.AmountOf(c.Denom)))
		}
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance %s is smaller than %s", spendable, amt)
	}
	k.setBalances(ctx, addr, remaining)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCoinSpent,
		sdk.NewAttribute(types.AttributeKeySpender, addr),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	))
	return nil
}

func (k BaseKeeper) addCoins(ctx sdk.Context, addr string, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	k.setBalances(ctx, addr, k.GetAllBalances(ctx, addr).Add(amt...))
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCoinReceived,
		sdk.NewAttribute(types.AttributeKeyReceiver, addr),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	))
	return nil
}

// SendCoins moves amt from fromAddr to toAddr, creating the recipient
// account if it does not exist.
func (k BaseKeeper) SendCoins(ctx sdk.Context, fromAddr, toAddr string, amt sdk.Coins) error {
	if !k.GetParams(ctx).DefaultSendEnabled {
		return types.ErrSendDisabled
	}
	return k.sendCoins(ctx, fromAddr, toAddr, amt)
}

func (k BaseKeeper) sendCoins(ctx sdk.Context, fromAddr, toAddr string, amt sdk.Coins) error {
	if err := k.subUnlockedCoins(ctx, fromAddr, amt); err != nil {
		return err
	}
	if err := k.addCoins(ctx, toAddr, amt); err != nil {
		return err
	}
	k.ak.EnsureAccount(ctx, toAddr)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeTransfer,
		sdk.NewAttribute(sdk.AttributeKeyRecipient, toAddr),
		sdk.NewAttribute(sdk.AttributeKeySender, fromAddr),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	))
	return nil
}

// SendCoinsFromModuleToAccount pays amt out of the named module account.
func (k BaseKeeper) SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule, recipientAddr string, amt sdk.Coins) error {
	macc := k.ak.GetModuleAccount(ctx, senderModule)
	return k.sendCoins(ctx, macc.BaseAccount.Address, recipientAddr, amt)
}

// SendCoinsFromAccountToModule pays amt into the named module account.
func (k BaseKeeper) SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr, recipientModule string, amt sdk.Coins) error {
	macc := k.ak.GetModuleAccount(ctx, recipientModule)
	return k.sendCoins(ctx, senderAddr, macc.BaseAccount.Address, amt)
}

// SendCoinsFromModuleToModule moves amt between module accounts.
func (k BaseKeeper) SendCoinsFromModuleToModule(ctx sdk.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	sender := k.ak.GetModuleAccount(ctx, senderModule)
	recipient := k.ak.GetModuleAccount(ctx, recipientModule)
	return k.sendCoins(ctx, sender.BaseAccount.Address, recipient.BaseAccount.Address, amt)
}

// MintCoins creates amt in the named module account, which must hold the
// minter permission.
func (k BaseKeeper) MintCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error {
	macc := k.ak.GetModuleAccount(ctx, moduleName)
	if !macc.HasPermission(authtypes.Minter) {
		return sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "module account %s does not have permissions to mint tokens", moduleName)
	}
	if err := k.addCoins(ctx, macc.BaseAccount.Address, amt); err != nil {
		return err
	}
	for _, c := range amt {
		supply := k.GetSupply(ctx, c.Denom)
		k.setSupply(ctx, sdk.NewCoinFromInt(c.Denom, supply.AmountOf().Add(supply.AmountOf(), c.AmountOf())))
	}
	ctx.Logger().Debug("minted coins from module account", "amount", amt.String(), "from", moduleName)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCoinMint,
		sdk.NewAttribute(types.AttributeKeyMinter, macc.BaseAccount.Address),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	))
	return nil
}

// BurnCoins destroys amt held by the named module account, which must
// hold the burner permission.
func (k BaseKeeper) BurnCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error {
	macc := k.ak.GetModuleAccount(ctx, moduleName)
	if !macc.HasPermission(authtypes.Burner) {
		return sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "module account %s does not have permissions to burn tokens", moduleName)
	}
	if err := k.subUnlockedCoins(ctx, macc.BaseAccount.Address, amt); err != nil {
		return err
	}
	for _, c := range amt {
		supply := k.GetSupply(ctx, c.Denom)
		k.setSupply(ctx, sdk.NewCoinFromInt(c.Denom, supply.AmountOf().Sub(supply.AmountOf(), c.AmountOf())))
	}
	ctx.Logger().Debug("burned tokens from module account", "amount", amt.String(), "from", moduleName)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCoinBurn,
		sdk.NewAttribute(types.AttributeKeyBurner, macc.BaseAccount.Address),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	))
	return nil
}

// GetSupply returns the total supply of denom.
func (k BaseKeeper) GetSupply(ctx sdk.Context, denom string) sdk.Coin {
	bz := ctx.KVStore(k.key).Get(types.SupplyStoreKey(denom))
	if bz == nil {
		return sdk.NewCoin(denom, 0)
	}
	return sdk.Coin{Denom: denom, Amount: string(bz)}
}

func (k BaseKeeper) setSupply(ctx sdk.Context, coin sdk.Coin) {
	store := ctx.KVStore(k.key)
	if coin.IsZero() {
		store.Delete(types.SupplyStoreKey(coin.Denom))
		return
	}
	store.Set(types.SupplyStoreKey(coin.Denom), []byte(coin.AmountOf().String()))
}

// GetTotalSupply returns the supply of every denom.
func (k BaseKeeper) GetTotalSupply(ctx sdk.Context) sdk.Coins {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(types.SupplyKey, sdk.PrefixEnd(types.SupplyKey))
	defer iter.Close()
	supply := sdk.Coins{}
	for ; iter.Valid(); iter.Next() {
		denom := string(iter.Key()[len(types.SupplyKey):])
		supply = supply.Add(sdk.Coin{Denom: denom, Amount: string(iter.Value())})
	}
	return supply
}

// SetDenomMetaData stores the metadata of its base denom.
func (k BaseKeeper) SetDenomMetaData(ctx sdk.Context, metadata types.Metadata) {
	ctx.KVStore(k.key).Set(types.DenomMetadataKey(metadata.Base), codec.MustMarshal(metadata))
}

// GetDenomMetaData returns the metadata of denom.
func (k BaseKeeper) GetDenomMetaData(ctx sdk.Context, denom string) (types.Metadata, bool) {
	bz := ctx.KVStore(k.key).Get(types.DenomMetadataKey(denom))
	if bz == nil {
		return types.Metadata{}, false
	}
	var metadata types.Metadata
	if err := codec.Unmarshal(bz, &metadata); err != nil {
		panic(err)
	}
	return metadata, true
}

// IterateAllDenomMetaData calls cb for every metadata entry until cb
// returns true.
func (k BaseKeeper) IterateAllDenomMetaData(ctx sdk.Context, cb func(types.Metadata) bool) {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(types.DenomMetadataPrefix, sdk.PrefixEnd(types.DenomMetadataPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var metadata types.Metadata
		if err := codec.Unmarshal(iter.Value(), &metadata); err != nil {
			panic(err)
		}
		if cb(metadata) {
			break
		}
	}
}

func (k BaseKeeper) GetParams(ctx sdk.Context) types.Params {
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

func (k BaseKeeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	ctx.KVStore(k.key).Set(types.ParamsKey, codec.MustMarshal(params))
	return nil
}

// InitGenesisBalance credits addr with coins minted out of thin air and
// raises the supply accordingly.
func (k BaseKeeper) InitGenesisBalance(ctx sdk.Context, addr string, coins sdk.Coins) error {
	if err := k.addCoins(ctx, addr, coins); err != nil {
		return err
	}
	k.ak.EnsureAccount(ctx, addr)
	for _, c := range coins {
		supply := k.GetSupply(ctx, c.Denom)
		k.setSupply(ctx, sdk.NewCoinFromInt(c.Denom, supply.AmountOf().Add(supply.AmountOf(), c.AmountOf())))
	}
	return nil
}
