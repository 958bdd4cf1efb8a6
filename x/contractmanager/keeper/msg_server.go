package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/contractmanager/types"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(k Keeper) msgServer { return msgServer{Keeper: k} }

func (ms msgServer) UpdateParams(ctx sdk.Context, msg types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if !ms.HasAuthority(msg.Authority) {
		return nil, sdkerrors.Wrapf(types.ErrInvalidAuthority, "invalid authority; expected one of %v, got %s", ms.authorities, msg.Authority)
	}
	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
