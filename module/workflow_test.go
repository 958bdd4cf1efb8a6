package module_test

import (
	"github.com/pkg/errors"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/module"
	"github.com/okx/testtube/runner"
	sdk "github.com/okx/testtube/types"
	banktypes "github.com/okx/testtube/x/bank/types"
	govtypes "github.com/okx/testtube/x/gov/types"
	tftypes "github.com/okx/testtube/x/tokenfactory/types"
)

type resolverFunc func(feeDenom string, gasAdjustment float64) (*account.SigningAccount, error)

func (f resolverFunc) ValidatorSigningAccount(feeDenom string, gasAdjustment float64) (*account.SigningAccount, error) {
	return f(feeDenom, gasAdjustment)
}

type unencodable struct {
	Rate float64
	Ch   chan int
}

func (suite *ModuleTestSuite) updateTokenFactoryParams() (tftypes.Params, tftypes.MsgUpdateParams) {
	params := tftypes.Params{
		DenomCreationFee:    sdk.NewCoins(sdk.NewCoin("untrn", 1000)),
		FeeCollectorAddress: suite.bob.Address(),
	}
	return params, tftypes.MsgUpdateParams{
		Authority: suite.app.ModuleAddress(govtypes.ModuleName),
		Params:    params,
	}
}

func (suite *ModuleTestSuite) TestProposeAndExecute() {
	gov := module.NewGovWithAppAccess(suite.app, suite.app)
	tf := module.NewTokenFactory(suite.app)
	params, msg := suite.updateTokenFactoryParams()

	res, err := gov.ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().NoError(err)
	id := res.Data.ProposalId
	suite.Require().Positive(id)

	votes, err := gov.Gov().QueryVotes(&govtypes.QueryVotesRequest{ProposalId: id})
	suite.Require().NoError(err)
	suite.Require().Len(votes.Votes, 1)
	suite.Require().Equal(suite.validator().Address(), votes.Votes[0].Voter)
	suite.Require().Len(votes.Votes[0].Options, 1)
	suite.Require().Equal(govtypes.OptionYes, votes.Votes[0].Options[0].Option)

	// still voting, nothing executed yet
	proposal, err := gov.Gov().QueryProposal(&govtypes.QueryProposalRequest{ProposalId: id})
	suite.Require().NoError(err)
	suite.Require().Equal(govtypes.StatusVotingPeriod, proposal.Proposal.Status)
	current, err := tf.QueryParams(&tftypes.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Empty(current.Params.DenomCreationFee)

	suite.Require().NoError(suite.app.IncreaseTime(61))

	proposal, err = gov.Gov().QueryProposal(&govtypes.QueryProposalRequest{ProposalId: id})
	suite.Require().NoError(err)
	suite.Require().Equal(govtypes.StatusPassed, proposal.Proposal.Status)
	current, err = tf.QueryParams(&tftypes.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(params.DenomCreationFee.String(), current.Params.DenomCreationFee.String())
	suite.Require().Equal(params.FeeCollectorAddress, current.Params.FeeCollectorAddress)

	again, err := gov.ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().NoError(err)
	suite.Require().Greater(again.Data.ProposalId, id)
}

func (suite *ModuleTestSuite) TestProposeAndExecuteVoteFee() {
	var gotDenom string
	var gotAdjustment float64
	resolver := resolverFunc(func(feeDenom string, gasAdjustment float64) (*account.SigningAccount, error) {
		gotDenom, gotAdjustment = feeDenom, gasAdjustment
		return suite.app.ValidatorSigningAccount(feeDenom, gasAdjustment)
	})
	_, msg := suite.updateTokenFactoryParams()

	_, err := module.NewGovWithAppAccess(suite.app, resolver).
		ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(module.DefaultVoteFeeDenom, gotDenom)
	suite.Require().Equal(module.DefaultVoteGasAdjustment, gotAdjustment)

	_, err = module.NewGovWithAppAccess(suite.app, resolver, module.WithVoteFee("untrn", 2)).
		ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(2.0, gotAdjustment)
}

func (suite *ModuleTestSuite) TestProposeAndExecuteEncodeFailure() {
	gov := module.NewGovWithAppAccess(suite.app, suite.app)
	height := suite.app.BlockHeight()

	_, err := gov.ProposeAndExecute("/test.Unencodable", unencodable{Rate: 1}, suite.alice.Address(), suite.alice)
	var wfErr *runner.WorkflowError
	suite.Require().ErrorAs(err, &wfErr)
	suite.Require().Equal(module.StepEncode, wfErr.Step)
	var encErr *runner.EncodeError
	suite.Require().ErrorAs(err, &encErr)
	suite.Require().Equal("/test.Unencodable", encErr.TypeURL)

	suite.Require().Equal(height, suite.app.BlockHeight())
	suite.Require().Zero(suite.alice.Submitted())
}

func (suite *ModuleTestSuite) TestProposeAndExecuteSubmitFailure() {
	resolved := false
	resolver := resolverFunc(func(string, float64) (*account.SigningAccount, error) {
		resolved = true
		return nil, errors.New("unreachable")
	})
	// the gov account cannot sign for alice
	send := banktypes.MsgSend{
		FromAddress: suite.alice.Address(),
		ToAddress:   suite.bob.Address(),
		Amount:      sdk.NewCoins(sdk.NewCoin("untrn", 1)),
	}

	_, err := module.NewGovWithAppAccess(suite.app, resolver).
		ProposeAndExecute(banktypes.TypeURLMsgSend, send, suite.alice.Address(), suite.alice)
	var wfErr *runner.WorkflowError
	suite.Require().ErrorAs(err, &wfErr)
	suite.Require().Equal(module.StepSubmit, wfErr.Step)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().False(resolved)

	proposals, err := module.NewGov(suite.app).QueryProposals(&govtypes.QueryProposalsRequest{})
	suite.Require().NoError(err)
	suite.Require().Empty(proposals.Proposals)
}

func (suite *ModuleTestSuite) TestProposeAndExecuteLeavesOrphanedProposal() {
	noValidator := errors.New("no validator available")
	_, msg := suite.updateTokenFactoryParams()

	_, err := module.NewGovWithAppAccess(suite.app, resolverFunc(func(string, float64) (*account.SigningAccount, error) {
		return nil, noValidator
	})).ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	var wfErr *runner.WorkflowError
	suite.Require().ErrorAs(err, &wfErr)
	suite.Require().Equal(module.StepSelectAuthority, wfErr.Step)
	suite.Require().ErrorIs(err, noValidator)

	// an account the chain never saw cannot pay for its vote
	stranger, err := account.GenerateSigningAccount("neutron", account.DefaultFeeSetting("untrn"))
	suite.Require().NoError(err)
	_, err = module.NewGovWithAppAccess(suite.app, resolverFunc(func(string, float64) (*account.SigningAccount, error) {
		return stranger, nil
	})).ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().ErrorAs(err, &wfErr)
	suite.Require().Equal(module.StepVote, wfErr.Step)

	gov := module.NewGov(suite.app)
	proposals, err := gov.QueryProposals(&govtypes.QueryProposalsRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(proposals.Proposals, 2)
	for _, p := range proposals.Proposals {
		suite.Require().Equal(govtypes.StatusVotingPeriod, p.Status)
		votes, err := gov.QueryVotes(&govtypes.QueryVotesRequest{ProposalId: p.Id})
		suite.Require().NoError(err)
		suite.Require().Empty(votes.Votes)
	}
	suite.Require().Equal(uint64(2), suite.alice.Succeeded())
	suite.Require().Zero(stranger.Submitted())
}

func (suite *ModuleTestSuite) TestSubmitExecutableProposal() {
	gov := module.NewGov(suite.app)
	_, msg := suite.updateTokenFactoryParams()

	res, err := gov.SubmitExecutableProposal(tftypes.TypeURLMsgUpdateParams, msg, suite.alice.Address(), suite.alice)
	suite.Require().NoError(err)

	proposal, err := gov.QueryProposal(&govtypes.QueryProposalRequest{ProposalId: res.Data.ProposalId})
	suite.Require().NoError(err)
	suite.Require().Len(proposal.Proposal.Messages, 1)
	suite.Require().Equal(tftypes.TypeURLMsgUpdateParams, proposal.Proposal.Messages[0].TypeURL)
	suite.Require().Equal(suite.alice.Address(), proposal.Proposal.Proposer)

	var inner tftypes.MsgUpdateParams
	suite.Require().NoError(proposal.Proposal.Messages[0].UnpackInto(&inner))
	suite.Require().Equal(msg.Authority, inner.Authority)

	tally, err := gov.QueryTallyResult(&govtypes.QueryTallyResultRequest{ProposalId: res.Data.ProposalId})
	suite.Require().NoError(err)
	suite.Require().Equal("0", tally.Tally.YesCount)

	_, err = gov.Vote(govtypes.MsgVote{
		ProposalId: res.Data.ProposalId,
		Voter:      suite.bob.Address(),
		Option:     govtypes.OptionNo,
	}, suite.bob)
	suite.Require().NoError(err)
	vote, err := gov.QueryVote(&govtypes.QueryVoteRequest{ProposalId: res.Data.ProposalId, Voter: suite.bob.Address()})
	suite.Require().NoError(err)
	suite.Require().Equal(govtypes.OptionNo, vote.Vote.Options[0].Option)

	params, err := gov.QueryParams(&govtypes.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(govtypes.DefaultVotingPeriod), params.Params.VotingPeriod)
}
