package bank

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/bank/keeper"
	"github.com/okx/testtube/x/bank/types"
)

// AppModule registers the bank messages, queries and params.
type AppModule struct {
	keeper keeper.BaseKeeper
}

func NewAppModule(k keeper.BaseKeeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	ms := keeper.NewMsgServerImpl(am.keeper)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgSend, ms.Send)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Balance", q.Balance)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"AllBalances", q.AllBalances)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"TotalSupply", q.TotalSupply)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"SupplyOf", q.SupplyOf)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"DenomMetadata", q.DenomMetadata)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"DenomsMetadata", q.DenomsMetadata)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
