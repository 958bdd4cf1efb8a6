package types

import (
	"fmt"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// MsgSubmitProposal submits a proposal executing Messages as the gov
// account.
type MsgSubmitProposal struct {
	Messages       []codec.Any `json:"messages"`
	InitialDeposit sdk.Coins   `json:"initial_deposit"`
	Proposer       string      `json:"proposer"`
	Metadata       string      `json:"metadata"`
	Title          string      `json:"title"`
	Summary        string      `json:"summary"`
	Expedited      bool        `json:"expedited"`
}

func (msg MsgSubmitProposal) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.Proposer); err != nil {
		return sdkerrors.Wrap(err, "invalid proposer address")
	}
	if err := msg.InitialDeposit.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if len(msg.Messages) == 0 {
		return ErrNoProposalMsgs
	}
	for i, m := range msg.Messages {
		if m.TypeURL == "" {
			return sdkerrors.Wrapf(ErrInvalidProposalMsg, "msg: %d, err: empty type url", i)
		}
	}
	return nil
}

func (msg MsgSubmitProposal) GetSigner() string { return msg.Proposer }

type MsgSubmitProposalResponse struct {
	ProposalId uint64 `json:"proposal_id"`
}

// MsgVote casts Option for Voter on a proposal.
type MsgVote struct {
	ProposalId uint64     `json:"proposal_id"`
	Voter      string     `json:"voter"`
	Option     VoteOption `json:"option"`
	Metadata   string     `json:"metadata"`
}

func (msg MsgVote) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.Voter); err != nil {
		return sdkerrors.Wrap(err, "invalid voter address")
	}
	if !ValidVoteOption(msg.Option) {
		return sdkerrors.Wrap(ErrInvalidVote, msg.Option.String())
	}
	return nil
}

func (msg MsgVote) GetSigner() string { return msg.Voter }

type MsgVoteResponse struct{}

// MsgDeposit adds Amount to the deposit of a proposal.
type MsgDeposit struct {
	ProposalId uint64    `json:"proposal_id"`
	Depositor  string    `json:"depositor"`
	Amount     sdk.Coins `json:"amount"`
}

func (msg MsgDeposit) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.Depositor); err != nil {
		return sdkerrors.Wrap(err, "invalid depositor address")
	}
	if len(msg.Amount) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, "deposit amount is empty")
	}
	if err := msg.Amount.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	return nil
}

func (msg MsgDeposit) GetSigner() string { return msg.Depositor }

type MsgDepositResponse struct{}

// MsgUpdateParams replaces the gov params. Authority must be gov.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg MsgUpdateParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.Authority); err != nil {
		return sdkerrors.Wrap(err, "invalid authority address")
	}
	if err := msg.Params.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, fmt.Sprintf("params: %s", err))
	}
	return nil
}

func (msg MsgUpdateParams) GetSigner() string { return msg.Authority }

type MsgUpdateParamsResponse struct{}
