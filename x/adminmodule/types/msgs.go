package types

import (
	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

type MsgAddAdmin struct {
	Creator string `json:"creator"`
	Admin   string `json:"admin"`
}

func (m MsgAddAdmin) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if err := sdk.ValidateAddress(m.Admin); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return nil
}

func (m MsgAddAdmin) GetSigner() string { return m.Creator }

type MsgAddAdminResponse struct{}

type MsgDeleteAdmin struct {
	Creator string `json:"creator"`
	Admin   string `json:"admin"`
}

func (m MsgDeleteAdmin) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if err := sdk.ValidateAddress(m.Admin); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return nil
}

func (m MsgDeleteAdmin) GetSigner() string { return m.Creator }

type MsgDeleteAdminResponse struct{}

// MsgSubmitProposal executes Messages at once as the adminmodule account.
// Proposer must be an admin.
type MsgSubmitProposal struct {
	Messages []codec.Any `json:"messages"`
	Proposer string      `json:"proposer"`
}

func (m MsgSubmitProposal) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Proposer); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid proposer address (%s)", err)
	}
	if len(m.Messages) == 0 {
		return ErrNoProposalMsgs
	}
	return nil
}

func (m MsgSubmitProposal) GetSigner() string { return m.Proposer }

type MsgSubmitProposalResponse struct {
	ProposalId uint64 `json:"proposal_id"`
}

// ArchivedProposal records an executed admin proposal.
type ArchivedProposal struct {
	ProposalId uint64      `json:"proposal_id"`
	Messages   []codec.Any `json:"messages"`
	Proposer   string      `json:"proposer"`
	SubmitTime int64       `json:"submit_time"`
}
