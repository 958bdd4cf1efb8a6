package keeper

import (
	"strconv"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/gov/types"
)

// AddVote records the vote of voter on proposal id, replacing any
// earlier vote of voter.
func (k Keeper) AddVote(ctx sdk.Context, id uint64, voter string, options []types.WeightedVoteOption, metadata string) error {
	proposal, found := k.GetProposal(ctx, id)
	if !found {
		return types.ErrUnknownProposal.Wrapf("%d", id)
	}
	if proposal.Status != types.StatusVotingPeriod {
		return types.ErrInactiveProposal.Wrapf("%d", id)
	}
	if uint64(len(metadata)) > k.GetParams(ctx).MaxMetadataLen {
		return types.ErrMetadataTooLong
	}
	if len(options) == 0 {
		return sdkerrors.Wrap(types.ErrInvalidVote, "no vote options")
	}
	for _, option := range options {
		if !types.ValidVoteOption(option.Option) {
			return sdkerrors.Wrap(types.ErrInvalidVote, option.Option.String())
		}
		if _, err := types.ParseRatio(option.Weight); err != nil {
			return sdkerrors.Wrap(types.ErrInvalidVote, err.Error())
		}
	}

	k.SetVote(ctx, types.Vote{ProposalId: id, Voter: voter, Options: options, Metadata: metadata})
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeProposalVote,
		sdk.NewAttribute(types.AttributeKeyVoter, voter),
		sdk.NewAttribute(types.AttributeKeyOption, options[0].Option.String()),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
	))
	return nil
}

func (k Keeper) GetVote(ctx sdk.Context, id uint64, voter string) (types.Vote, bool) {
	bz := ctx.KVStore(k.key).Get(types.VoteKey(id, voter))
	if bz == nil {
		return types.Vote{}, false
	}
	var vote types.Vote
	if err := codec.Unmarshal(bz, &vote); err != nil {
		panic(err)
	}
	return vote, true
}

func (k Keeper) SetVote(ctx sdk.Context, vote types.Vote) {
	ctx.KVStore(k.key).Set(types.VoteKey(vote.ProposalId, vote.Voter), codec.MustMarshal(vote))
}

// GetVotes returns the votes on proposal id in voter order.
func (k Keeper) GetVotes(ctx sdk.Context, id uint64) (votes []types.Vote) {
	store := ctx.KVStore(k.key)
	prefix := types.VotesKey(id)
	iter := store.Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var vote types.Vote
		if err := codec.Unmarshal(iter.Value(), &vote); err != nil {
			panic(err)
		}
		votes = append(votes, vote)
	}
	return votes
}
