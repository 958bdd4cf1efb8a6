package keeper

import (
	"math/big"
	"sort"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/dex/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier { return Querier{Keeper: k} }

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q Querier) LimitOrderTrancheUser(ctx sdk.Context, req *types.QueryGetLimitOrderTrancheUserRequest) (*types.QueryGetLimitOrderTrancheUserResponse, error) {
	user, found := q.GetLimitOrderTrancheUser(ctx, req.Address, req.TrancheKey)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "limit order %s of %s", req.TrancheKey, req.Address)
	}
	res := &types.QueryGetLimitOrderTrancheUserResponse{LimitOrderTrancheUser: user}
	if req.CalcWithdrawableShares {
		// Orders are never matched, so nothing is ever filled.
		res.WithdrawableShares = "0"
	}
	return res, nil
}

func (q Querier) LimitOrderTrancheUserAll(ctx sdk.Context, _ *types.QueryAllLimitOrderTrancheUserRequest) (*types.QueryAllLimitOrderTrancheUserResponse, error) {
	users := []types.LimitOrderTrancheUser{}
	q.IterateLimitOrderTrancheUsers(ctx, types.LimitOrderTrancheUserKeyPrefix, func(user types.LimitOrderTrancheUser) bool {
		users = append(users, user)
		return false
	})
	return &types.QueryAllLimitOrderTrancheUserResponse{LimitOrderTrancheUser: users}, nil
}

func (q Querier) LimitOrderTrancheUserAllByAddress(ctx sdk.Context, req *types.QueryAllLimitOrderTrancheUserByAddressRequest) (*types.QueryAllLimitOrderTrancheUserByAddressResponse, error) {
	if err := sdk.ValidateAddress(req.Address); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	orders := []types.LimitOrderTrancheUser{}
	q.IterateLimitOrderTrancheUsers(ctx, types.TrancheUserAddressPrefix(req.Address), func(user types.LimitOrderTrancheUser) bool {
		orders = append(orders, user)
		return false
	})
	return &types.QueryAllLimitOrderTrancheUserByAddressResponse{LimitOrders: orders}, nil
}

func (q Querier) UserDepositsAll(ctx sdk.Context, req *types.QueryAllUserDepositsRequest) (*types.QueryAllUserDepositsResponse, error) {
	if err := sdk.ValidateAddress(req.Address); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	deposits := []types.DepositRecord{}
	q.IteratePools(ctx, types.PoolKeyPrefix, func(pool types.Pool) bool {
		shares := q.bk.GetBalance(ctx, req.Address, types.PoolDenom(pool.Id)).AmountOf()
		if shares.Sign() == 0 {
			return false
		}
		total := amountOf(pool.TotalShares)
		record := types.DepositRecord{
			PairId:          pool.PairId,
			SharesOwned:     shares.String(),
			CenterTickIndex: pool.CenterTickIndex,
			LowerTickIndex:  pool.LowerTick0(),
			UpperTickIndex:  pool.UpperTick1(),
			Fee:             pool.Fee,
			TotalReserves0:  new(big.Int).Quo(new(big.Int).Mul(amountOf(pool.Reserves0), shares), total).String(),
			TotalReserves1:  new(big.Int).Quo(new(big.Int).Mul(amountOf(pool.Reserves1), shares), total).String(),
		}
		if req.IncludePoolData {
			p := pool
			record.Pool = &p
		}
		deposits = append(deposits, record)
		return false
	})
	return &types.QueryAllUserDepositsResponse{Deposits: deposits}, nil
}

func tradePairFromRequest(pairIDStr, tokenIn string) (types.PairID, types.TradePairID, error) {
	pairID, err := types.NewPairIDFromString(pairIDStr)
	if err != nil {
		return types.PairID{}, types.TradePairID{}, err
	}
	tradePairID, err := pairID.TradePairIDFromTaker(tokenIn)
	if err != nil {
		return types.PairID{}, types.TradePairID{}, err
	}
	return pairID, tradePairID, nil
}

func (q Querier) poolReserves(ctx sdk.Context, pairID types.PairID, maker string) []types.PoolReserves {
	reserves := []types.PoolReserves{}
	q.IteratePools(ctx, types.PoolPairPrefix(pairID), func(pool types.Pool) bool {
		side := pool.Reserves(maker)
		if amountOf(side.ReservesMakerDenom).Sign() > 0 {
			reserves = append(reserves, side)
		}
		return false
	})
	return reserves
}

func (q Querier) tranches(ctx sdk.Context, tradePairID types.TradePairID) []types.LimitOrderTranche {
	tranches := []types.LimitOrderTranche{}
	q.IterateTranches(ctx, types.TrancheTradePairPrefix(types.LimitOrderTrancheKeyPrefix, tradePairID), func(tranche types.LimitOrderTranche) bool {
		tranches = append(tranches, tranche)
		return false
	})
	return tranches
}

// TickLiquidityAll lists the liquidity a taker paying TokenIn can trade
// against, ordered by tick.
func (q Querier) TickLiquidityAll(ctx sdk.Context, req *types.QueryAllTickLiquidityRequest) (*types.QueryAllTickLiquidityResponse, error) {
	pairID, tradePairID, err := tradePairFromRequest(req.PairId, req.TokenIn)
	if err != nil {
		return nil, err
	}
	liquidity := []types.TickLiquidity{}
	for _, reserves := range q.poolReserves(ctx, pairID, tradePairID.MakerDenom) {
		r := reserves
		liquidity = append(liquidity, types.TickLiquidity{PoolReserves: &r})
	}
	for _, tranche := range q.tranches(ctx, tradePairID) {
		t := tranche
		liquidity = append(liquidity, types.TickLiquidity{LimitOrderTranche: &t})
	}
	sort.SliceStable(liquidity, func(i, j int) bool {
		return liquidity[i].TickIndex() < liquidity[j].TickIndex()
	})
	return &types.QueryAllTickLiquidityResponse{TickLiquidity: liquidity}, nil
}

func (q Querier) PoolReservesAll(ctx sdk.Context, req *types.QueryAllPoolReservesRequest) (*types.QueryAllPoolReservesResponse, error) {
	pairID, tradePairID, err := tradePairFromRequest(req.PairId, req.TokenIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryAllPoolReservesResponse{PoolReserves: q.poolReserves(ctx, pairID, tradePairID.MakerDenom)}, nil
}

func (q Querier) LimitOrderTrancheAll(ctx sdk.Context, req *types.QueryAllLimitOrderTrancheRequest) (*types.QueryAllLimitOrderTrancheResponse, error) {
	_, tradePairID, err := tradePairFromRequest(req.PairId, req.TokenIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryAllLimitOrderTrancheResponse{LimitOrderTranche: q.tranches(ctx, tradePairID)}, nil
}
