package keeper

import (
	"math/big"
	"sort"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/staking/types"
)

// Keeper stores validators and their bonded tokens.
type Keeper struct {
	key       sdk.StoreKey
	bk        types.BankKeeper
	valPrefix string
}

// NewKeeper returns a staking keeper. valPrefix is the bech32 prefix of
// operator addresses.
func NewKeeper(key sdk.StoreKey, bk types.BankKeeper, valPrefix string) Keeper {
	return Keeper{key: key, bk: bk, valPrefix: valPrefix}
}

// CreateValidator bonds selfBond from account and registers a bonded
// validator operated by account.
func (k Keeper) CreateValidator(ctx sdk.Context, account string, consPubKey []byte, selfBond sdk.Coin, desc types.Description) (types.Validator, error) {
	_, bz, err := sdk.BytesFromBech32(account)
	if err != nil {
		return types.Validator{}, err
	}
	operator, err := sdk.Bech32FromBytes(k.valPrefix, bz)
	if err != nil {
		return types.Validator{}, err
	}
	if _, found := k.GetValidator(ctx, operator); found {
		return types.Validator{}, types.ErrValidatorOwnerExists
	}
	if bondDenom := k.GetParams(ctx).BondDenom; selfBond.Denom != bondDenom {
		return types.Validator{}, sdkerrors.Wrapf(types.ErrBadDenom, "got %s, expected %s", selfBond.Denom, bondDenom)
	}
	if err := k.bk.SendCoinsFromAccountToModule(ctx, account, types.BondedPoolName, sdk.NewCoins(selfBond)); err != nil {
		return types.Validator{}, err
	}

	val := types.Validator{
		OperatorAddress: operator,
		AccountAddress:  account,
		ConsensusPubKey: consPubKey,
		Status:          types.Bonded,
		Tokens:          selfBond.Amount,
		DelegatorShares: selfBond.Amount,
		Description:     desc,
	}
	k.SetValidator(ctx, val)
	ctx.Logger().Info("created validator", "operator", operator, "tokens", selfBond.String())
	return val, nil
}

// SetValidator stores val and indexes it by account.
func (k Keeper) SetValidator(ctx sdk.Context, val types.Validator) {
	store := ctx.KVStore(k.key)
	store.Set(types.GetValidatorKey(val.OperatorAddress), codec.MustMarshal(val))
	store.Set(types.GetValidatorByAccountKey(val.AccountAddress), []byte(val.OperatorAddress))
}

// GetValidator returns the validator operated by operator.
func (k Keeper) GetValidator(ctx sdk.Context, operator string) (types.Validator, bool) {
	bz := ctx.KVStore(k.key).Get(types.GetValidatorKey(operator))
	if bz == nil {
		return types.Validator{}, false
	}
	var val types.Validator
	if err := codec.Unmarshal(bz, &val); err != nil {
		panic(err)
	}
	return val, true
}

// GetValidatorByAccount returns the validator whose account is account.
func (k Keeper) GetValidatorByAccount(ctx sdk.Context, account string) (types.Validator, bool) {
	operator := ctx.KVStore(k.key).Get(types.GetValidatorByAccountKey(account))
	if operator == nil {
		return types.Validator{}, false
	}
	return k.GetValidator(ctx, string(operator))
}

// IsValidator reports whether account operates a validator.
func (k Keeper) IsValidator(ctx sdk.Context, account string) bool {
	_, found := k.GetValidatorByAccount(ctx, account)
	return found
}

// GetAllValidators returns every validator in operator address order.
func (k Keeper) GetAllValidators(ctx sdk.Context) (validators []types.Validator) {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(types.ValidatorsKey, sdk.PrefixEnd(types.ValidatorsKey))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var val types.Validator
		if err := codec.Unmarshal(iter.Value(), &val); err != nil {
			panic(err)
		}
		validators = append(validators, val)
	}
	return validators
}

// GetBondedValidatorsByPower returns the bonded validators, highest
// power first.
func (k Keeper) GetBondedValidatorsByPower(ctx sdk.Context) []types.Validator {
	var bonded []types.Validator
	for _, val := range k.GetAllValidators(ctx) {
		if val.IsBonded() {
			bonded = append(bonded, val)
		}
	}
	sort.SliceStable(bonded, func(i, j int) bool {
		return bonded[i].BondedTokens().Cmp(bonded[j].BondedTokens()) > 0
	})
	maxVals := int(k.GetParams(ctx).MaxValidators)
	if len(bonded) > maxVals {
		bonded = bonded[:maxVals]
	}
	return bonded
}

// TotalBondedTokens sums the tokens of the bonded validators.
func (k Keeper) TotalBondedTokens(ctx sdk.Context) *big.Int {
	total := new(big.Int)
	for _, val := range k.GetBondedValidatorsByPower(ctx) {
		total.Add(total, val.BondedTokens())
	}
	return total
}

// ValidatorPower returns the consensus power of val.
func (k Keeper) ValidatorPower(val types.Validator) int64 {
	return TokensToConsensusPower(val.BondedTokens())
}

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.key).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(sdk.DefaultBondDenom)
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
