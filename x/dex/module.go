package dex

import (
	"github.com/okx/testtube/app/simulator"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/dex/keeper"
	"github.com/okx/testtube/x/dex/types"
)

// AppModule registers the subset of dex messages and queries the simulator
// supports. Swaps, filled order withdrawal and estimates are left
// unregistered so callers see an unknown route.
type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	ms := keeper.NewMsgServerImpl(am.keeper)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgDeposit, ms.Deposit)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgWithdrawal, ms.Withdrawal)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgPlaceLimitOrder, ms.PlaceLimitOrder)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgCancelLimitOrder, ms.CancelLimitOrder)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"LimitOrderTrancheUser", q.LimitOrderTrancheUser)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"LimitOrderTrancheUserAll", q.LimitOrderTrancheUserAll)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"LimitOrderTrancheUserAllByAddress", q.LimitOrderTrancheUserAllByAddress)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"UserDepositsAll", q.UserDepositsAll)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"TickLiquidityAll", q.TickLiquidityAll)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"PoolReservesAll", q.PoolReservesAll)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"LimitOrderTrancheAll", q.LimitOrderTrancheAll)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}

func (am AppModule) EndBlock(ctx sdk.Context) {
	am.keeper.EndBlocker(ctx)
}
