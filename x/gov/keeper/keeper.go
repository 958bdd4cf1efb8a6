package keeper

import (
	"time"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/gov/types"
)

// Keeper stores proposals, deposits and votes and executes passed
// proposals through the message router.
type Keeper struct {
	key       sdk.StoreKey
	ak        types.AccountKeeper
	bk        types.BankKeeper
	sk        types.StakingKeeper
	router    sdk.MsgRouter
	authority string
}

// NewKeeper returns a gov keeper. Proposal messages are dispatched by
// router and must be signed by the gov module account.
func NewKeeper(key sdk.StoreKey, ak types.AccountKeeper, bk types.BankKeeper, sk types.StakingKeeper, router sdk.MsgRouter) Keeper {
	return Keeper{
		key:       key,
		ak:        ak,
		bk:        bk,
		sk:        sk,
		router:    router,
		authority: ak.GetModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the gov module account address.
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

// GetProposalID returns the id the next proposal will get.
func (k Keeper) GetProposalID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.key).Get(types.ProposalIDKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setProposalID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.key).Set(types.ProposalIDKey, sdk.Uint64ToBigEndian(id))
}

func (k Keeper) GetProposal(ctx sdk.Context, id uint64) (types.Proposal, bool) {
	bz := ctx.KVStore(k.key).Get(types.ProposalKey(id))
	if bz == nil {
		return types.Proposal{}, false
	}
	var proposal types.Proposal
	if err := codec.Unmarshal(bz, &proposal); err != nil {
		panic(err)
	}
	return proposal, true
}

func (k Keeper) SetProposal(ctx sdk.Context, proposal types.Proposal) {
	ctx.KVStore(k.key).Set(types.ProposalKey(proposal.Id), codec.MustMarshal(proposal))
}

// DeleteProposal removes a proposal that never reached its voting period.
func (k Keeper) DeleteProposal(ctx sdk.Context, id uint64) {
	proposal, found := k.GetProposal(ctx, id)
	if !found {
		return
	}
	store := ctx.KVStore(k.key)
	store.Delete(types.InactiveProposalQueueKey(id, time.Unix(proposal.DepositEndTime, 0)))
	store.Delete(types.ProposalKey(id))
}

// IterateProposals calls cb for every proposal in id order until cb
// returns true.
func (k Keeper) IterateProposals(ctx sdk.Context, cb func(types.Proposal) bool) {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(types.ProposalsKeyPrefix, sdk.PrefixEnd(types.ProposalsKeyPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var proposal types.Proposal
		if err := codec.Unmarshal(iter.Value(), &proposal); err != nil {
			panic(err)
		}
		if cb(proposal) {
			break
		}
	}
}

// queuedProposalIDs returns the ids in the queue under prefix that end at
// or before endTime.
func (k Keeper) queuedProposalIDs(ctx sdk.Context, prefix []byte, endTime time.Time) []uint64 {
	store := ctx.KVStore(k.key)
	iter := store.Iterator(prefix, types.QueueEndKey(prefix, endTime))
	defer iter.Close()
	var ids []uint64
	for ; iter.Valid(); iter.Next() {
		ids = append(ids, types.SplitQueueKey(iter.Key()))
	}
	return ids
}
