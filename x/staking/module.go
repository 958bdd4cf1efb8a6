package staking

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/staking/keeper"
	"github.com/okx/testtube/x/staking/types"
)

// AppModule exposes the staking queries and params.
type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Validators", q.Validators)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Validator", q.Validator)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Pool", q.Pool)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)
	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
