package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/tokenfactory/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q Querier) DenomAuthorityMetadata(ctx sdk.Context, req *types.QueryDenomAuthorityMetadataRequest) (*types.QueryDenomAuthorityMetadataResponse, error) {
	denom, err := types.GetTokenDenom(req.Creator, req.Subdenom)
	if err != nil {
		return nil, err
	}
	metadata, err := q.GetAuthorityMetadata(ctx, denom)
	if err != nil {
		return nil, err
	}
	return &types.QueryDenomAuthorityMetadataResponse{AuthorityMetadata: metadata}, nil
}

func (q Querier) DenomsFromCreator(ctx sdk.Context, req *types.QueryDenomsFromCreatorRequest) (*types.QueryDenomsFromCreatorResponse, error) {
	return &types.QueryDenomsFromCreatorResponse{Denoms: q.GetDenomsFromCreator(ctx, req.Creator)}, nil
}
