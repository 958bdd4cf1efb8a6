package keeper

import (
	"math/big"
	"strconv"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/gov/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the gov message handlers.
func NewMsgServerImpl(k Keeper) msgServer { return msgServer{Keeper: k} }

func (k msgServer) SubmitProposal(ctx sdk.Context, msg types.MsgSubmitProposal) (*types.MsgSubmitProposalResponse, error) {
	if err := k.validateInitialDeposit(ctx, msg.InitialDeposit); err != nil {
		return nil, err
	}
	proposal, err := k.Keeper.SubmitProposal(ctx, msg.Messages, msg.Metadata, msg.Title, msg.Summary, msg.Proposer, msg.Expedited)
	if err != nil {
		return nil, err
	}
	votingStarted, err := k.Keeper.AddDeposit(ctx, proposal.Id, msg.Proposer, msg.InitialDeposit)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Proposer),
	))
	if votingStarted {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSubmitProposal,
			sdk.NewAttribute(types.AttributeKeyVotingPeriodStart, strconv.FormatUint(proposal.Id, 10)),
		))
	}
	return &types.MsgSubmitProposalResponse{ProposalId: proposal.Id}, nil
}

// validateInitialDeposit requires the initial deposit to cover the
// minimum initial deposit ratio of the minimum deposit.
func (k msgServer) validateInitialDeposit(ctx sdk.Context, initialDeposit sdk.Coins) error {
	params := k.GetParams(ctx)
	ratio, err := types.ParseRatio(params.MinInitialDepositRatio)
	if err != nil || ratio.Sign() == 0 {
		return nil
	}
	var required sdk.Coins
	for _, c := range params.MinDeposit {
		amt := new(big.Rat).Mul(new(big.Rat).SetInt(c.AmountOf()), ratio)
		required = required.Add(sdk.NewCoinFromInt(c.Denom, new(big.Int).Quo(amt.Num(), amt.Denom())))
	}
	if !initialDeposit.IsAllGTE(required) {
		return sdkerrors.Wrapf(types.ErrMinDepositTooSmall, "was (%s), need (%s)", initialDeposit, required)
	}
	return nil
}

func (k msgServer) Vote(ctx sdk.Context, msg types.MsgVote) (*types.MsgVoteResponse, error) {
	if err := k.Keeper.AddVote(ctx, msg.ProposalId, msg.Voter, types.NewNonSplitVoteOption(msg.Option), msg.Metadata); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Voter),
	))
	return &types.MsgVoteResponse{}, nil
}

func (k msgServer) Deposit(ctx sdk.Context, msg types.MsgDeposit) (*types.MsgDepositResponse, error) {
	votingStarted, err := k.Keeper.AddDeposit(ctx, msg.ProposalId, msg.Depositor, msg.Amount)
	if err != nil {
		return nil, err
	}
	if votingStarted {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeProposalDeposit,
			sdk.NewAttribute(types.AttributeKeyVotingPeriodStart, strconv.FormatUint(msg.ProposalId, 10)),
		))
	}
	return &types.MsgDepositResponse{}, nil
}

func (k msgServer) UpdateParams(ctx sdk.Context, msg types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg.Authority != k.authority {
		return nil, types.ErrInvalidAuthority.Wrapf("expected %s, got %s", k.authority, msg.Authority)
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
