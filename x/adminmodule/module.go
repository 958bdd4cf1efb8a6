package adminmodule

import (
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/x/adminmodule/keeper"
	"github.com/okx/testtube/x/adminmodule/types"
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
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgAddAdmin, ms.AddAdmin)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgDeleteAdmin, ms.DeleteAdmin)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgSubmitProposal, ms.SubmitProposal)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Admins", q.Admins)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"ArchivedProposals", q.ArchivedProposals)
}
