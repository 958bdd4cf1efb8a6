package contractmanager

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/contractmanager/keeper"
	"github.com/okx/testtube/x/contractmanager/types"
)

type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	ms := keeper.NewMsgServerImpl(am.keeper)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Failures", q.Failures)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"AddressFailure", q.AddressFailure)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
