package gov

import (
	"github.com/okx/testtube/app/simulator"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/gov/keeper"
	"github.com/okx/testtube/x/gov/types"
)

// AppModule registers the gov v1 messages and queries and tallies
// proposals at the end of every block.
type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (AppModule) Name() string { return types.ModuleName }

func (am AppModule) RegisterServices(cfg simulator.Configurator) {
	ms := keeper.NewMsgServerImpl(am.keeper)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgSubmitProposal, ms.SubmitProposal)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgVote, ms.Vote)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgDeposit, ms.Deposit)
	simulator.RegisterMsgHandler(cfg.MsgRouter, types.TypeURLMsgUpdateParams, ms.UpdateParams)

	q := keeper.NewQuerier(am.keeper)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Proposal", q.Proposal)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Proposals", q.Proposals)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Vote", q.Vote)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Votes", q.Votes)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Deposit", q.Deposit)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Deposits", q.Deposits)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"TallyResult", q.TallyResult)
	simulator.RegisterQueryHandler(cfg.QueryRouter, types.QueryPath+"Params", q.Params)

	simulator.RegisterParams(cfg.Params, types.ModuleName, types.ParamsTypeURL, am.keeper.GetParams, am.keeper.SetParams)
}

func (am AppModule) EndBlock(ctx sdk.Context) {
	am.keeper.EndBlocker(ctx)
}
