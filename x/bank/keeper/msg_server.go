package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/bank/types"
)

type msgServer struct {
	BaseKeeper
}

// NewMsgServerImpl returns the bank message handlers.
func NewMsgServerImpl(k BaseKeeper) msgServer { return msgServer{BaseKeeper: k} }

func (k msgServer) Send(ctx sdk.Context, msg types.MsgSend) (*types.MsgSendResponse, error) {
	if err := k.SendCoins(ctx, msg.FromAddress, msg.ToAddress, msg.Amount); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
	))
	return &types.MsgSendResponse{}, nil
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
