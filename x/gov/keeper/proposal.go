package keeper

import (
	"strconv"
	"strings"
	"time"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/gov/types"
)

// ValidateProposalMessages checks every message is routable, valid and
// signed by the gov account.
func (k Keeper) ValidateProposalMessages(msgs []codec.Any) error {
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

// SubmitProposal stores a new proposal in its deposit period.
func (k Keeper) SubmitProposal(ctx sdk.Context, msgs []codec.Any, metadata, title, summary, proposer string, expedited bool) (types.Proposal, error) {
	params := k.GetParams(ctx)
	if uint64(len(metadata)) > params.MaxMetadataLen {
		return types.Proposal{}, sdkerrors.Wrapf(types.ErrMetadataTooLong, "got %d, max %d", len(metadata), params.MaxMetadataLen)
	}
	if err := k.ValidateProposalMessages(msgs); err != nil {
		return types.Proposal{}, err
	}

	id := k.GetProposalID(ctx)
	now := ctx.BlockTime()
	proposal := types.Proposal{
		Id:               id,
		Messages:         msgs,
		Status:           types.StatusDepositPeriod,
		FinalTallyResult: types.EmptyTallyResult(),
		SubmitTime:       now.Unix(),
		DepositEndTime:   now.Add(time.Duration(params.MaxDepositPeriod) * time.Second).Unix(),
		TotalDeposit:     sdk.Coins{},
		Metadata:         metadata,
		Title:            title,
		Summary:          summary,
		Proposer:         proposer,
		Expedited:        expedited,
	}
	k.SetProposal(ctx, proposal)
	ctx.KVStore(k.key).Set(types.InactiveProposalQueueKey(id, time.Unix(proposal.DepositEndTime, 0)), sdk.Uint64ToBigEndian(id))
	k.setProposalID(ctx, id+1)

	typeURLs := make([]string, len(msgs))
	for i, m := range msgs {
		typeURLs[i] = m.TypeURL
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSubmitProposal,
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyProposalMessages, strings.Join(typeURLs, ",")),
	))
	return proposal, nil
}

// activateVotingPeriod moves proposal from the deposit queue to the
// voting queue.
func (k Keeper) activateVotingPeriod(ctx sdk.Context, proposal *types.Proposal) {
	params := k.GetParams(ctx)
	period := params.VotingPeriod
	if proposal.Expedited {
		period = params.ExpeditedVotingPeriod
	}
	start := ctx.BlockTime()
	end := start.Add(time.Duration(period) * time.Second)

	store := ctx.KVStore(k.key)
	store.Delete(types.InactiveProposalQueueKey(proposal.Id, time.Unix(proposal.DepositEndTime, 0)))
	store.Set(types.ActiveProposalQueueKey(proposal.Id, end), sdk.Uint64ToBigEndian(proposal.Id))

	proposal.Status = types.StatusVotingPeriod
	proposal.VotingStartTime = start.Unix()
	proposal.VotingEndTime = end.Unix()
}
