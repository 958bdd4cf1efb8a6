package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/contractmanager/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q Querier) Failures(ctx sdk.Context, req *types.QueryFailuresRequest) (*types.QueryFailuresResponse, error) {
	prefix := types.ContractFailuresKey
	if req.Address != "" {
		if err := sdk.ValidateAddress(req.Address); err != nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "failed to parse address: %s", req.Address)
		}
		prefix = types.GetFailureKeyPrefix(req.Address)
	}
	failures, err := q.GetFailures(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return &types.QueryFailuresResponse{Failures: failures}, nil
}

func (q Querier) AddressFailure(ctx sdk.Context, req *types.QueryAddressFailureRequest) (*types.QueryAddressFailureResponse, error) {
	failure, err := q.GetFailure(ctx, req.Address, req.FailureId)
	if err != nil {
		return nil, err
	}
	return &types.QueryAddressFailureResponse{Failure: failure}, nil
}
