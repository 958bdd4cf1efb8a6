package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/testutil"
	sdk "github.com/okx/testtube/types"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	authtypes "github.com/okx/testtube/x/auth/types"
	"github.com/okx/testtube/x/bank"
	bankkeeper "github.com/okx/testtube/x/bank/keeper"
	banktypes "github.com/okx/testtube/x/bank/types"
	"github.com/okx/testtube/x/gov/keeper"
	"github.com/okx/testtube/x/gov/types"
	stakingkeeper "github.com/okx/testtube/x/staking/keeper"
	stakingtypes "github.com/okx/testtube/x/staking/types"
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
	ak := authkeeper.NewAccountKeeper(authtypes.StoreKey, prefix, map[string][]string{
		types.ModuleName:            {authtypes.Burner},
		stakingtypes.BondedPoolName: nil,
	})
	suite.bk = bankkeeper.NewBaseKeeper(banktypes.StoreKey, ak, ak.GetModuleAddress(types.ModuleName))
	sk := stakingkeeper.NewKeeper(stakingtypes.StoreKey, suite.bk, prefix+"valoper")

	router := simulator.NewMsgServiceRouter()
	bank.NewAppModule(suite.bk).RegisterServices(simulator.Configurator{
		MsgRouter:   router,
		QueryRouter: simulator.NewQueryRouter(),
		Params:      simulator.NewParamsRegistry(),
	})
	suite.keeper = keeper.NewKeeper(types.StoreKey, ak, suite.bk, sk, router)

	suite.validator = testutil.Addr(prefix, "validator")
	suite.bob = testutil.Addr(prefix, "bob")
	suite.Require().NoError(suite.bk.InitGenesisBalance(suite.ctx, suite.validator, sdk.NewCoins(sdk.NewCoin("untrn", 2000000))))
	suite.Require().NoError(suite.bk.InitGenesisBalance(suite.ctx, suite.keeper.GetAuthority(), sdk.NewCoins(sdk.NewCoin("untrn", 500))))
	_, err := sk.CreateValidator(suite.ctx, suite.validator, nil, sdk.NewCoin("untrn", 1000000), stakingtypes.Description{Moniker: "val"})
	suite.Require().NoError(err)
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) sendFromGov(amount int64) codec.Any {
	packed, err := codec.NewAny(banktypes.TypeURLMsgSend, banktypes.MsgSend{
		FromAddress: suite.keeper.GetAuthority(),
		ToAddress:   suite.bob,
		Amount:      sdk.NewCoins(sdk.NewCoin("untrn", amount)),
	})
	suite.Require().NoError(err)
	return packed
}

func (suite *KeeperTestSuite) submit(msgs ...codec.Any) uint64 {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	res, err := ms.SubmitProposal(suite.ctx, types.MsgSubmitProposal{
		Messages: msgs,
		Proposer: suite.validator,
		Title:    "title",
		Summary:  "summary",
	})
	suite.Require().NoError(err)
	return res.ProposalId
}

func (suite *KeeperTestSuite) vote(id uint64, option types.VoteOption) {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.Vote(suite.ctx, types.MsgVote{ProposalId: id, Voter: suite.validator, Option: option})
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) endVotingPeriod() {
	header := suite.ctx.BlockHeader()
	header.Height++
	header.Time = header.Time.Add((types.DefaultVotingPeriod + 1) * time.Second)
	suite.ctx = suite.ctx.WithBlockHeader(header)
	suite.keeper.EndBlocker(suite.ctx)
}

func (suite *KeeperTestSuite) TestProposalPassesAndExecutes() {
	id := suite.submit(suite.sendFromGov(100))
	suite.Require().Equal(uint64(1), id)

	proposal, found := suite.keeper.GetProposal(suite.ctx, id)
	suite.Require().True(found)
	suite.Require().Equal(types.StatusVotingPeriod, proposal.Status)
	suite.Require().Equal(proposal.VotingStartTime+types.DefaultVotingPeriod, proposal.VotingEndTime)

	suite.vote(id, types.OptionYes)
	suite.endVotingPeriod()

	proposal, _ = suite.keeper.GetProposal(suite.ctx, id)
	suite.Require().Equal(types.StatusPassed, proposal.Status)
	suite.Require().Equal("1000000", proposal.FinalTallyResult.YesCount)
	suite.Require().Equal(sdk.NewCoin("untrn", 100), suite.bk.GetBalance(suite.ctx, suite.bob, "untrn"))
}

func (suite *KeeperTestSuite) TestProposalFailsExecution() {
	id := suite.submit(suite.sendFromGov(100), suite.sendFromGov(1000))
	suite.vote(id, types.OptionYes)
	suite.endVotingPeriod()

	proposal, _ := suite.keeper.GetProposal(suite.ctx, id)
	suite.Require().Equal(types.StatusFailed, proposal.Status)
	suite.Require().Contains(proposal.FailedReason, "insufficient funds")
	suite.Require().True(suite.bk.GetBalance(suite.ctx, suite.bob, "untrn").IsZero())
}

func (suite *KeeperTestSuite) TestProposalRejected() {
	noVotes := suite.submit(suite.sendFromGov(1))
	vetoed := suite.submit(suite.sendFromGov(1))
	suite.vote(vetoed, types.OptionNoWithVeto)
	suite.endVotingPeriod()

	for _, id := range []uint64{noVotes, vetoed} {
		proposal, _ := suite.keeper.GetProposal(suite.ctx, id)
		suite.Require().Equal(types.StatusRejected, proposal.Status)
	}
}

func (suite *KeeperTestSuite) TestVoteOverwrites() {
	id := suite.submit(suite.sendFromGov(1))
	suite.vote(id, types.OptionNo)
	suite.vote(id, types.OptionYes)

	votes := suite.keeper.GetVotes(suite.ctx, id)
	suite.Require().Len(votes, 1)
	suite.Require().Equal(types.OptionYes, votes[0].Options[0].Option)
}

func (suite *KeeperTestSuite) TestVoteInactiveProposal() {
	id := suite.submit(suite.sendFromGov(1))
	suite.endVotingPeriod()

	err := suite.keeper.AddVote(suite.ctx, id, suite.validator, types.NewNonSplitVoteOption(types.OptionYes), "")
	suite.Require().ErrorIs(err, types.ErrInactiveProposal)

	err = suite.keeper.AddVote(suite.ctx, 42, suite.validator, types.NewNonSplitVoteOption(types.OptionYes), "")
	suite.Require().ErrorIs(err, types.ErrUnknownProposal)
}

func (suite *KeeperTestSuite) TestSubmitRejectsForeignSigner() {
	packed, err := codec.NewAny(banktypes.TypeURLMsgSend, banktypes.MsgSend{
		FromAddress: suite.validator,
		ToAddress:   suite.bob,
		Amount:      sdk.NewCoins(sdk.NewCoin("untrn", 1)),
	})
	suite.Require().NoError(err)

	_, err = suite.keeper.SubmitProposal(suite.ctx, []codec.Any{packed}, "", "", "", suite.validator, false)
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)

	_, err = suite.keeper.SubmitProposal(suite.ctx, []codec.Any{{TypeURL: "/unknown.Msg"}}, "", "", "", suite.validator, false)
	suite.Require().ErrorIs(err, types.ErrInvalidProposalMsg)

	_, err = suite.keeper.SubmitProposal(suite.ctx, nil, "", "", "", suite.validator, false)
	suite.Require().ErrorIs(err, types.ErrNoProposalMsgs)
}

func (suite *KeeperTestSuite) TestMinDepositKeepsProposalInDepositPeriod() {
	params := types.DefaultParams()
	params.MinDeposit = sdk.NewCoins(sdk.NewCoin("untrn", 10))
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, params))

	id := suite.submit(suite.sendFromGov(1))
	proposal, _ := suite.keeper.GetProposal(suite.ctx, id)
	suite.Require().Equal(types.StatusDepositPeriod, proposal.Status)

	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.Deposit(suite.ctx, types.MsgDeposit{ProposalId: id, Depositor: suite.validator, Amount: sdk.NewCoins(sdk.NewCoin("untrn", 10))})
	suite.Require().NoError(err)

	proposal, _ = suite.keeper.GetProposal(suite.ctx, id)
	suite.Require().Equal(types.StatusVotingPeriod, proposal.Status)
	suite.Require().Equal(sdk.NewCoins(sdk.NewCoin("untrn", 10)), proposal.TotalDeposit)

	suite.vote(id, types.OptionYes)
	suite.endVotingPeriod()
	suite.Require().Equal(sdk.NewCoin("untrn", 1000000), suite.bk.GetBalance(suite.ctx, suite.validator, "untrn"))
}

func (suite *KeeperTestSuite) TestQuerier() {
	id := suite.submit(suite.sendFromGov(1))
	suite.vote(id, types.OptionYes)
	q := keeper.NewQuerier(suite.keeper)

	tally, err := q.TallyResult(suite.ctx, &types.QueryTallyResultRequest{ProposalId: id})
	suite.Require().NoError(err)
	suite.Require().Equal("1000000", tally.Tally.YesCount)

	vote, err := q.Vote(suite.ctx, &types.QueryVoteRequest{ProposalId: id, Voter: suite.validator})
	suite.Require().NoError(err)
	suite.Require().Equal(types.OptionYes, vote.Vote.Options[0].Option)

	proposals, err := q.Proposals(suite.ctx, &types.QueryProposalsRequest{ProposalStatus: types.StatusVotingPeriod, Voter: suite.validator})
	suite.Require().NoError(err)
	suite.Require().Len(proposals.Proposals, 1)

	_, err = q.Proposal(suite.ctx, &types.QueryProposalRequest{ProposalId: 7})
	suite.Require().Error(err)
}
