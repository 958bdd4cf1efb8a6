package keeper

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/gov/types"
)

// EndBlocker drops proposals whose deposit period ended and tallies the
// proposals whose voting period ended, executing the passed ones.
func (k Keeper) EndBlocker(ctx sdk.Context) {
	logger := ctx.Logger().With("module", "x/"+types.ModuleName)
	now := ctx.BlockTime()

	for _, id := range k.queuedProposalIDs(ctx, types.InactiveProposalQueuePrefix, now) {
		proposal, found := k.GetProposal(ctx, id)
		if !found {
			continue
		}
		k.DeleteAndBurnDeposits(ctx, id)
		k.DeleteProposal(ctx, id)

		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeInactiveProposal,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyProposalResult, types.AttributeValueProposalDropped),
		))
		logger.Info("proposal did not meet minimum deposit; deleted",
			"proposal", id, "min_deposit", k.GetParams(ctx).MinDeposit.String(), "total_deposit", proposal.TotalDeposit.String())
	}

	for _, id := range k.queuedProposalIDs(ctx, types.ActiveProposalQueuePrefix, now) {
		proposal, found := k.GetProposal(ctx, id)
		if !found {
			continue
		}
		passes, burnDeposits, tally := k.Tally(ctx, proposal)
		if burnDeposits {
			k.DeleteAndBurnDeposits(ctx, id)
		} else {
			k.RefundAndDeleteDeposits(ctx, id)
		}

		var tagValue string
		if passes {
			if err := k.executeProposal(ctx, proposal); err != nil {
				proposal.Status = types.StatusFailed
				proposal.FailedReason = err.Error()
				tagValue = types.AttributeValueProposalFailed
			} else {
				proposal.Status = types.StatusPassed
				tagValue = types.AttributeValueProposalPassed
			}
		} else {
			proposal.Status = types.StatusRejected
			tagValue = types.AttributeValueProposalRejected
		}

		proposal.FinalTallyResult = tally
		k.SetProposal(ctx, proposal)
		ctx.KVStore(k.key).Delete(types.ActiveProposalQueueKey(id, time.Unix(proposal.VotingEndTime, 0)))

		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeActiveProposal,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyProposalResult, tagValue),
		))
		logger.Info("proposal tallied", "proposal", id, "status", proposal.Status.String(), "reason", proposal.FailedReason)
	}
}

// executeProposal runs the messages of proposal on a branch of ctx that
// is committed only if all of them succeed.
func (k Keeper) executeProposal(ctx sdk.Context, proposal types.Proposal) (err error) {
	cacheCtx, writeCache := ctx.CacheContext()
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("recovered from panic: %v", r)
		}
	}()
	for i, msg := range proposal.Messages {
		if _, err := k.router.Dispatch(cacheCtx, msg); err != nil {
			return errors.Wrapf(err, "message %d", i)
		}
	}
	writeCache()
	return nil
}
