package keeper

import (
	"strconv"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/adminmodule/types"
)

const (
	EventTypeAddAdmin       = "add_admin"
	EventTypeDeleteAdmin    = "delete_admin"
	EventTypeSubmitProposal = "submit_admin_proposal"

	AttributeKeyAdmin      = "admin"
	AttributeKeyProposalID = "proposal_id"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(k Keeper) msgServer { return msgServer{Keeper: k} }

func (ms msgServer) assertAdmin(ctx sdk.Context, addr string) error {
	if !ms.IsAdmin(ctx, addr) {
		return sdkerrors.Wrapf(types.ErrNotAdmin, "%s", addr)
	}
	return nil
}

func (ms msgServer) AddAdmin(ctx sdk.Context, msg types.MsgAddAdmin) (*types.MsgAddAdminResponse, error) {
	if err := ms.assertAdmin(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if ms.IsAdmin(ctx, msg.Admin) {
		return nil, sdkerrors.Wrapf(types.ErrAdminAlreadyExists, "%s", msg.Admin)
	}
	ms.SetAdmin(ctx, msg.Admin)
	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeAddAdmin, sdk.NewAttribute(AttributeKeyAdmin, msg.Admin)))
	return &types.MsgAddAdminResponse{}, nil
}

func (ms msgServer) DeleteAdmin(ctx sdk.Context, msg types.MsgDeleteAdmin) (*types.MsgDeleteAdminResponse, error) {
	if err := ms.assertAdmin(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if !ms.IsAdmin(ctx, msg.Admin) {
		return nil, sdkerrors.Wrapf(types.ErrAdminNotFound, "%s", msg.Admin)
	}
	if len(ms.GetAdmins(ctx)) == 1 {
		return nil, types.ErrLastAdmin
	}
	ms.RemoveAdmin(ctx, msg.Admin)
	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeDeleteAdmin, sdk.NewAttribute(AttributeKeyAdmin, msg.Admin)))
	return &types.MsgDeleteAdminResponse{}, nil
}

func (ms msgServer) SubmitProposal(ctx sdk.Context, msg types.MsgSubmitProposal) (*types.MsgSubmitProposalResponse, error) {
	if err := ms.assertAdmin(ctx, msg.Proposer); err != nil {
		return nil, err
	}
	id, err := ms.Keeper.SubmitProposal(ctx, msg.Proposer, msg.Messages)
	if err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeSubmitProposal,
		sdk.NewAttribute(AttributeKeyProposalID, strconv.FormatUint(id, 10)),
	))
	return &types.MsgSubmitProposalResponse{ProposalId: id}, nil
}
