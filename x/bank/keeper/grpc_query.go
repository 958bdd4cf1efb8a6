package keeper

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/bank/types"
)

// Querier serves the bank query routes.
type Querier struct {
	BaseKeeper
}

func NewQuerier(k BaseKeeper) Querier { return Querier{BaseKeeper: k} }

func (q Querier) Balance(ctx sdk.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if err := sdk.ValidateAddress(req.Address); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address: %s", err)
	}
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return &types.QueryBalanceResponse{Balance: q.GetBalance(ctx, req.Address, req.Denom)}, nil
}

func (q Querier) AllBalances(ctx sdk.Context, req *types.QueryAllBalancesRequest) (*types.QueryAllBalancesResponse, error) {
	if err := sdk.ValidateAddress(req.Address); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address: %s", err)
	}
	return &types.QueryAllBalancesResponse{Balances: q.GetAllBalances(ctx, req.Address)}, nil
}

func (q Querier) TotalSupply(ctx sdk.Context, _ *types.QueryTotalSupplyRequest) (*types.QueryTotalSupplyResponse, error) {
	return &types.QueryTotalSupplyResponse{Supply: q.GetTotalSupply(ctx)}, nil
}

func (q Querier) SupplyOf(ctx sdk.Context, req *types.QuerySupplyOfRequest) (*types.QuerySupplyOfResponse, error) {
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return &types.QuerySupplyOfResponse{Amount: q.GetSupply(ctx, req.Denom)}, nil
}

func (q Querier) DenomMetadata(ctx sdk.Context, req *types.QueryDenomMetadataRequest) (*types.QueryDenomMetadataResponse, error) {
	metadata, ok := q.GetDenomMetaData(ctx, req.Denom)
	if !ok {
		return nil, types.ErrDenomMetadataNotFound.Wrapf("client metadata for denom %s", req.Denom)
	}
	return &types.QueryDenomMetadataResponse{Metadata: metadata}, nil
}

func (q Querier) DenomsMetadata(ctx sdk.Context, _ *types.QueryDenomsMetadataRequest) (*types.QueryDenomsMetadataResponse, error) {
	var all []types.Metadata
	q.IterateAllDenomMetaData(ctx, func(m types.Metadata) bool {
		all = append(all, m)
		return false
	})
	return &types.QueryDenomsMetadataResponse{Metadatas: all}, nil
}

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
