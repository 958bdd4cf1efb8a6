package marketmap

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/marketmap/keeper"
	"github.com/okx/testtube/x/marketmap/types"
)

type AppModule struct {
	keeper *keeper.Keeper
}

func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	ms := keeper.NewMsgServerImpl(am.keeper)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgCreateMarkets, ms.CreateMarkets)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateMarkets, ms.UpdateMarkets)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgRemoveMarketAuthorities, ms.RemoveMarketAuthorities)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"MarketMap", q.MarketMap)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Market", q.Market)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"LastUpdated", q.LastUpdated)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
