package auth

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/auth/keeper"
	"github.com/okx/testtube/x/auth/types"
)

// AppModule exposes the auth queries and params.
type AppModule struct {
	keeper keeper.AccountKeeper
}

func NewAppModule(k keeper.AccountKeeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Account", q.Account)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"ModuleAccountByName", q.ModuleAccountByName)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)
	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
