package keeper

import (
	"github.com/pkg/errors"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/adminmodule/types"
)

// Keeper holds the admin set and executes admin proposals through router
// as authority.
type Keeper struct {
	key       sdk.StoreKey
	authority string
	router    sdk.MsgRouter
}

func NewKeeper(key sdk.StoreKey, authority string, router sdk.MsgRouter) Keeper {
	return Keeper{key: key, authority: authority, router: router}
}

// GetAuthority returns the account admin proposals execute as.
func (k Keeper) GetAuthority() string { return k.authority }

func (k Keeper) InitGenesis(ctx sdk.Context, admins []string) error {
	for _, admin := range admins {
		if err := sdk.ValidateAddress(admin); err != nil {
			return err
		}
		k.SetAdmin(ctx, admin)
	}
	return nil
}

func (k Keeper) SetAdmin(ctx sdk.Context, admin string) {
	ctx.KVStore(k.key).Set(types.AdminKey(admin), []byte(admin))
}

func (k Keeper) RemoveAdmin(ctx sdk.Context, admin string) {
	ctx.KVStore(k.key).Delete(types.AdminKey(admin))
}

func (k Keeper) IsAdmin(ctx sdk.Context, addr string) bool {
	return ctx.KVStore(k.key).Has(types.AdminKey(addr))
}

// GetAdmins returns the admins in address order.
func (k Keeper) GetAdmins(ctx sdk.Context) []string {
	iter := ctx.KVStore(k.key).Iterator(types.AdminKeyPrefix, sdk.PrefixEnd(types.AdminKeyPrefix))
	defer iter.Close()
	admins := []string{}
	for ; iter.Valid(); iter.Next() {
		admins = append(admins, string(iter.Value()))
	}
	return admins
}

func (k Keeper) nextProposalID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.key)
	id := uint64(1)
	if bz := store.Get(types.ProposalIDKey); bz != nil {
		id = sdk.BigEndianToUint64(bz)
	}
	store.Set(types.ProposalIDKey, sdk.Uint64ToBigEndian(id+1))
	return id
}

func (k Keeper) validateProposalMessages(msgs []codec.Any) error {
	if len(msgs) == 0 {
		return types.ErrNoProposalMsgs
	}
	for i, packed := range msgs {
		msg, err := k.router.Decode(packed)
		if err != nil {
			return sdkerrors.Wrapf(types.ErrInvalidProposalMsg, "msg: %d, err: %s", i, err)
		}
		if err := msg.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(types.ErrInvalidProposalMsg, "msg: %d, err: %s", i, err)
		}
		if signer := msg.GetSigner(); signer != k.authority {
			return sdkerrors.Wrapf(types.ErrInvalidSigner, "msg: %d, signer: %s", i, signer)
		}
	}
	return nil
}

// SubmitProposal executes msgs as the adminmodule account and archives the
// proposal. Either every message applies or none does.
func (k Keeper) SubmitProposal(ctx sdk.Context, proposer string, msgs []codec.Any) (uint64, error) {
	if err := k.validateProposalMessages(msgs); err != nil {
		return 0, err
	}
	if err := k.execute(ctx, msgs); err != nil {
		return 0, sdkerrors.Wrap(types.ErrProposalExecution, err.Error())
	}
	id := k.nextProposalID(ctx)
	ctx.KVStore(k.key).Set(types.ArchivedProposalKey(id), codec.MustMarshal(types.ArchivedProposal{
		ProposalId: id,
		Messages:   msgs,
		Proposer:   proposer,
		SubmitTime: ctx.BlockTime().Unix(),
	}))
	ctx.Logger().Info("executed admin proposal", "proposal", id, "proposer", proposer, "msgs", len(msgs))
	return id, nil
}

func (k Keeper) execute(ctx sdk.Context, msgs []codec.Any) (err error) {
	cacheCtx, writeCache := ctx.CacheContext()
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("recovered from panic: %v", r)
		}
	}()
	for i, msg := range msgs {
		if _, err := k.router.Dispatch(cacheCtx, msg); err != nil {
			return errors.Wrapf(err, "message %d", i)
		}
	}
	writeCache()
	return nil
}

// GetArchivedProposals returns executed proposals in id order.
func (k Keeper) GetArchivedProposals(ctx sdk.Context) ([]types.ArchivedProposal, error) {
	iter := ctx.KVStore(k.key).Iterator(types.ArchivedProposalKeyPrefix, sdk.PrefixEnd(types.ArchivedProposalKeyPrefix))
	defer iter.Close()
	proposals := []types.ArchivedProposal{}
	for ; iter.Valid(); iter.Next() {
		var proposal types.ArchivedProposal
		if err := codec.Unmarshal(iter.Value(), &proposal); err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, nil
}
