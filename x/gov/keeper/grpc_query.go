package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/gov/types"
)

// Querier serves the gov v1 query routes.
type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) Proposal(ctx sdk.Context, req *types.QueryProposalRequest) (*types.QueryProposalResponse, error) {
	if req.ProposalId == 0 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id can not be 0")
	}
	proposal, found := q.GetProposal(ctx, req.ProposalId)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "proposal %d doesn't exist", req.ProposalId)
	}
	return &types.QueryProposalResponse{Proposal: proposal}, nil
}

func (q Querier) Proposals(ctx sdk.Context, req *types.QueryProposalsRequest) (*types.QueryProposalsResponse, error) {
	var proposals []types.Proposal
	q.IterateProposals(ctx, func(p types.Proposal) bool {
		if req.ProposalStatus != types.StatusNil && p.Status != req.ProposalStatus {
			return false
		}
		if req.Voter != "" {
			if _, found := q.GetVote(ctx, p.Id, req.Voter); !found {
				return false
			}
		}
		if req.Depositor != "" {
			if _, found := q.GetDeposit(ctx, p.Id, req.Depositor); !found {
				return false
			}
		}
		proposals = append(proposals, p)
		return false
	})
	return &types.QueryProposalsResponse{Proposals: proposals}, nil
}

func (q Querier) Vote(ctx sdk.Context, req *types.QueryVoteRequest) (*types.QueryVoteResponse, error) {
	if req.ProposalId == 0 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id can not be 0")
	}
	if req.Voter == "" {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty voter address")
	}
	vote, found := q.GetVote(ctx, req.ProposalId, req.Voter)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "voter: %v not found for proposal: %v", req.Voter, req.ProposalId)
	}
	return &types.QueryVoteResponse{Vote: vote}, nil
}

func (q Querier) Votes(ctx sdk.Context, req *types.QueryVotesRequest) (*types.QueryVotesResponse, error) {
	if req.ProposalId == 0 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id can not be 0")
	}
	return &types.QueryVotesResponse{Votes: q.GetVotes(ctx, req.ProposalId)}, nil
}

func (q Querier) Deposit(ctx sdk.Context, req *types.QueryDepositRequest) (*types.QueryDepositResponse, error) {
	deposit, found := q.GetDeposit(ctx, req.ProposalId, req.Depositor)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "depositer: %v not found for proposal: %v", req.Depositor, req.ProposalId)
	}
	return &types.QueryDepositResponse{Deposit: deposit}, nil
}

func (q Querier) Deposits(ctx sdk.Context, req *types.QueryDepositsRequest) (*types.QueryDepositsResponse, error) {
	return &types.QueryDepositsResponse{Deposits: q.GetDeposits(ctx, req.ProposalId)}, nil
}

// TallyResult returns the final tally of a finished proposal and the
// running tally of a proposal still in its voting period.
func (q Querier) TallyResult(ctx sdk.Context, req *types.QueryTallyResultRequest) (*types.QueryTallyResultResponse, error) {
	if req.ProposalId == 0 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id can not be 0")
	}
	proposal, found := q.GetProposal(ctx, req.ProposalId)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "proposal %d doesn't exist", req.ProposalId)
	}
	switch proposal.Status {
	case types.StatusDepositPeriod:
		return &types.QueryTallyResultResponse{Tally: types.EmptyTallyResult()}, nil
	case types.StatusPassed, types.StatusRejected, types.StatusFailed:
		return &types.QueryTallyResultResponse{Tally: proposal.FinalTallyResult}, nil
	default:
		_, _, tally := q.Tally(ctx, proposal)
		return &types.QueryTallyResultResponse{Tally: tally}, nil
	}
}

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
