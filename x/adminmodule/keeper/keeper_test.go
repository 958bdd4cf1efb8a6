package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/testutil"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/adminmodule/keeper"
	"github.com/okx/testtube/x/adminmodule/types"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	authtypes "github.com/okx/testtube/x/auth/types"
	"github.com/okx/testtube/x/bank"
	bankkeeper "github.com/okx/testtube/x/bank/keeper"
	banktypes "github.com/okx/testtube/x/bank/types"
)

const prefix = "neutron"

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	bk        bankkeeper.BaseKeeper
	keeper    keeper.Keeper
	validator string
	bob       string
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.ctx = testutil.DefaultContext()
	ak := authkeeper.NewAccountKeeper(authtypes.StoreKey, prefix, map[string][]string{types.ModuleName: nil})
	suite.bk = bankkeeper.NewBaseKeeper(banktypes.StoreKey, ak, ak.GetModuleAddress("gov"))

	router := simulator.NewMsgServiceRouter()
	bank.NewAppModule(suite.bk).RegisterServices(simulator.Configurator{
		MsgRouter:   router,
		QueryRouter: simulator.NewQueryRouter(),
		Params:      simulator.NewParamsRegistry(),
	})
	suite.keeper = keeper.NewKeeper(types.StoreKey, ak.GetModuleAddress(types.ModuleName), router)

	suite.validator = testutil.Addr(prefix, "validator")
	suite.bob = testutil.Addr(prefix, "bob")
	suite.Require().NoError(suite.keeper.InitGenesis(suite.ctx, []string{suite.validator}))
	suite.Require().NoError(suite.bk.InitGenesisBalance(suite.ctx, suite.keeper.GetAuthority(), sdk.NewCoins(sdk.NewCoin("untrn", 100))))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) send(from string, amount int64) codec.Any {
	packed, err := codec.NewAny(banktypes.TypeURLMsgSend, banktypes.MsgSend{
		FromAddress: from,
		ToAddress:   suite.bob,
		Amount:      sdk.NewCoins(sdk.NewCoin("untrn", amount)),
	})
	suite.Require().NoError(err)
	return packed
}

func (suite *KeeperTestSuite) TestAddAndDeleteAdmin() {
	ms := keeper.NewMsgServerImpl(suite.keeper)

	_, err := ms.AddAdmin(suite.ctx, types.MsgAddAdmin{Creator: suite.bob, Admin: suite.bob})
	suite.Require().ErrorIs(err, types.ErrNotAdmin)

	_, err = ms.AddAdmin(suite.ctx, types.MsgAddAdmin{Creator: suite.validator, Admin: suite.bob})
	suite.Require().NoError(err)
	_, err = ms.AddAdmin(suite.ctx, types.MsgAddAdmin{Creator: suite.validator, Admin: suite.bob})
	suite.Require().ErrorIs(err, types.ErrAdminAlreadyExists)

	admins, err := keeper.NewQuerier(suite.keeper).Admins(suite.ctx, &types.QueryAdminsRequest{})
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{suite.validator, suite.bob}, admins.Admins)

	_, err = ms.DeleteAdmin(suite.ctx, types.MsgDeleteAdmin{Creator: suite.bob, Admin: suite.validator})
	suite.Require().NoError(err)
	_, err = ms.DeleteAdmin(suite.ctx, types.MsgDeleteAdmin{Creator: suite.bob, Admin: suite.bob})
	suite.Require().ErrorIs(err, types.ErrLastAdmin)
	suite.Require().Equal([]string{suite.bob}, suite.keeper.GetAdmins(suite.ctx))
}

func (suite *KeeperTestSuite) TestSubmitProposalExecutesImmediately() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	res, err := ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{
		Proposer: suite.validator,
		Messages: []codec.Any{suite.send(suite.keeper.GetAuthority(), 40)},
	})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), res.ProposalId)
	suite.Require().Equal(sdk.NewCoin("untrn", 40), suite.bk.GetBalance(suite.ctx, suite.bob, "untrn"))

	archived, err := suite.keeper.GetArchivedProposals(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(archived, 1)
	suite.Require().Equal(suite.validator, archived[0].Proposer)
}

func (suite *KeeperTestSuite) TestSubmitProposalIsAtomic() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{
		Proposer: suite.validator,
		Messages: []codec.Any{
			suite.send(suite.keeper.GetAuthority(), 40),
			suite.send(suite.keeper.GetAuthority(), 100),
		},
	})
	suite.Require().ErrorIs(err, types.ErrProposalExecution)
	suite.Require().Equal(sdk.NewCoin("untrn", 0), suite.bk.GetBalance(suite.ctx, suite.bob, "untrn"))
	suite.Require().Equal(sdk.NewCoin("untrn", 100), suite.bk.GetBalance(suite.ctx, suite.keeper.GetAuthority(), "untrn"))
}

func (suite *KeeperTestSuite) TestSubmitProposalRejectsForeignSigner() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{
		Proposer: suite.validator,
		Messages: []codec.Any{suite.send(suite.validator, 1)},
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)

	_, err = ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{
		Proposer: suite.bob,
		Messages: []codec.Any{suite.send(suite.keeper.GetAuthority(), 1)},
	})
	suite.Require().ErrorIs(err, types.ErrNotAdmin)

	_, err = ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{Proposer: suite.validator})
	suite.Require().ErrorIs(err, types.ErrNoProposalMsgs)
}
