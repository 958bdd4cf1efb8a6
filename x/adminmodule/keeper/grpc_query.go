package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/adminmodule/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) Admins(ctx sdk.Context, _ *types.QueryAdminsRequest) (*types.QueryAdminsResponse, error) {
	return &types.QueryAdminsResponse{Admins: q.GetAdmins(ctx)}, nil
}

func (q Querier) ArchivedProposals(ctx sdk.Context, _ *types.QueryArchivedProposalsRequest) (*types.QueryArchivedProposalsResponse, error) {
	proposals, err := q.GetArchivedProposals(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryArchivedProposalsResponse{Proposals: proposals}, nil
}
