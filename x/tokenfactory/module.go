package tokenfactory

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/tokenfactory/keeper"
	"github.com/okx/testtube/x/tokenfactory/types"
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
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgCreateDenom, ms.CreateDenom)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgMint, ms.Mint)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgBurn, ms.Burn)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgChangeAdmin, ms.ChangeAdmin)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgSetDenomMetadata, ms.SetDenomMetadata)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"DenomAuthorityMetadata", q.DenomAuthorityMetadata)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"DenomsFromCreator", q.DenomsFromCreator)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}
