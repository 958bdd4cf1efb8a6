package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/auth/types"
)

// Querier serves the auth query routes.
type Querier struct {
	AccountKeeper
}

func NewQuerier(k AccountKeeper) Querier { return Querier{AccountKeeper: k} }

func (q Querier) Account(ctx sdk.Context, req *types.QueryAccountRequest) (*types.QueryAccountResponse, error) {
	if err := sdk.ValidateAddress(req.Address); err != nil {
		return nil, err
	}
	acc, ok := q.GetAccount(ctx, req.Address)
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "account %s not found", req.Address)
	}
	return &types.QueryAccountResponse{Account: acc}, nil
}

func (q Querier) ModuleAccountByName(ctx sdk.Context, req *types.QueryModuleAccountByNameRequest) (*types.QueryModuleAccountByNameResponse, error) {
	if _, ok := q.permAddrs[req.Name]; !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "module account %s not found", req.Name)
	}
	return &types.QueryModuleAccountByNameResponse{Account: q.GetModuleAccount(ctx, req.Name)}, nil
}

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
