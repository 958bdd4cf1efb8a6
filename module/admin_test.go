package module_test

import (
	"github.com/okx/testtube/module"
	"github.com/okx/testtube/runner"
	admintypes "github.com/okx/testtube/x/adminmodule/types"
	cmtypes "github.com/okx/testtube/x/contractmanager/types"
)

func (suite *ModuleTestSuite) TestAdmins() {
	admin := module.NewAdmin(suite.app)
	val := suite.validator()

	admins, err := admin.QueryAdmins(&admintypes.QueryAdminsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{val.Address()}, admins.Admins)

	_, err = admin.AddAdmin(admintypes.MsgAddAdmin{Creator: suite.alice.Address(), Admin: suite.alice.Address()}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)

	_, err = admin.AddAdmin(admintypes.MsgAddAdmin{Creator: val.Address(), Admin: suite.alice.Address()}, val)
	suite.Require().NoError(err)
	admins, err = admin.QueryAdmins(&admintypes.QueryAdminsRequest{})
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{val.Address(), suite.alice.Address()}, admins.Admins)

	_, err = admin.DeleteAdmin(admintypes.MsgDeleteAdmin{Creator: suite.alice.Address(), Admin: suite.alice.Address()}, suite.alice)
	suite.Require().NoError(err)
	admins, err = admin.QueryAdmins(&admintypes.QueryAdminsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{val.Address()}, admins.Admins)
}

func (suite *ModuleTestSuite) TestAdminProposalUpdatesContractmanager() {
	admin := module.NewAdmin(suite.app)
	cm := module.NewContractmanager(suite.app)
	val := suite.validator()

	params, err := cm.QueryParams(&cmtypes.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(cmtypes.DefaultSudoCallGasLimit, params.Params.SudoCallGasLimit)

	res, err := admin.SubmitExecutableProposal(cmtypes.TypeURLMsgUpdateParams, cmtypes.MsgUpdateParams{
		Authority: suite.app.ModuleAddress(admintypes.ModuleName),
		Params:    cmtypes.Params{SudoCallGasLimit: 2000000},
	}, val.Address(), val)
	suite.Require().NoError(err)

	params, err = cm.QueryParams(&cmtypes.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2000000), params.Params.SudoCallGasLimit)

	archived, err := admin.QueryArchivedProposals(&admintypes.QueryArchivedProposalsRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(archived.Proposals, 1)
	suite.Require().Equal(res.Data.ProposalId, archived.Proposals[0].ProposalId)

	// only the gov and adminmodule accounts may update params
	_, err = cm.UpdateParams(cmtypes.MsgUpdateParams{
		Authority: suite.alice.Address(),
		Params:    cmtypes.Params{SudoCallGasLimit: 1},
	}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)

	failures, err := cm.QueryFailures(&cmtypes.QueryFailuresRequest{Address: suite.alice.Address()})
	suite.Require().NoError(err)
	suite.Require().Empty(failures.Failures)
}
