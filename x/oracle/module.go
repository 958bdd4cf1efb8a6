package oracle

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/oracle/keeper"
	"github.com/okx/testtube/x/oracle/types"
)

// AppModule exposes the oracle queries. Prices are written by the app
// directly, there are no oracle messages.
type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"GetAllCurrencyPairs", q.GetAllCurrencyPairs)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"GetPrice", q.GetPrice)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"GetPrices", q.GetPrices)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"GetCurrencyPairMapping", q.GetCurrencyPairMapping)
}
