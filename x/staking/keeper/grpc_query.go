package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/staking/types"
)

// Querier serves the staking query routes.
type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

// Validators lists validators, filtered by status when one is given.
func (q Querier) Validators(ctx sdk.Context, req *types.QueryValidatorsRequest) (*types.QueryValidatorsResponse, error) {
	all := q.GetAllValidators(ctx)
	if req.Status == "" {
		return &types.QueryValidatorsResponse{Validators: all}, nil
	}
	status, err := types.ParseBondStatus(req.Status)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	var filtered []types.Validator
	for _, val := range all {
		if val.Status == status {
			filtered = append(filtered, val)
		}
	}
	return &types.QueryValidatorsResponse{Validators: filtered}, nil
}

func (q Querier) Validator(ctx sdk.Context, req *types.QueryValidatorRequest) (*types.QueryValidatorResponse, error) {
	if req.ValidatorAddr == "" {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "validator address cannot be empty")
	}
	val, found := q.GetValidator(ctx, req.ValidatorAddr)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrNoValidatorFound, "validator %s not found", req.ValidatorAddr)
	}
	return &types.QueryValidatorResponse{Validator: val}, nil
}

func (q Querier) Pool(ctx sdk.Context, _ *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	bonded := q.TotalBondedTokens(ctx)
	return &types.QueryPoolResponse{Pool: types.Pool{NotBondedTokens: "0", BondedTokens: bonded.String()}}, nil
}

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
