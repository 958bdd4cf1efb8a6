package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/runner"
	govtypes "github.com/okx/testtube/x/gov/types"
)

// Gov binds the gov v1 messages and queries.
type Gov struct {
	runner runner.Runner
}

func NewGov(r runner.Runner) Gov { return Gov{runner: r} }

func (m Gov) SubmitProposal(msg govtypes.MsgSubmitProposal, signer *account.SigningAccount) (*runner.ExecuteResponse[govtypes.MsgSubmitProposalResponse], error) {
	return execute[govtypes.MsgSubmitProposalResponse](m.runner, govtypes.TypeURLMsgSubmitProposal, msg, signer)
}

// SubmitExecutableProposal submits a proposal whose only message is msg,
// encoded under typeURL. msg runs as the gov account once the proposal
// passes.
func (m Gov) SubmitExecutableProposal(typeURL string, msg interface{}, proposer string, signer *account.SigningAccount) (*runner.ExecuteResponse[govtypes.MsgSubmitProposalResponse], error) {
	packed, err := codec.NewAny(typeURL, msg)
	if err != nil {
		return nil, &runner.EncodeError{TypeURL: typeURL, Err: err}
	}
	return m.SubmitProposal(govtypes.MsgSubmitProposal{
		Messages: []codec.Any{packed},
		Proposer: proposer,
	}, signer)
}

func (m Gov) Vote(msg govtypes.MsgVote, signer *account.SigningAccount) (*runner.ExecuteResponse[govtypes.MsgVoteResponse], error) {
	return execute[govtypes.MsgVoteResponse](m.runner, govtypes.TypeURLMsgVote, msg, signer)
}

func (m Gov) Deposit(msg govtypes.MsgDeposit, signer *account.SigningAccount) (*runner.ExecuteResponse[govtypes.MsgDepositResponse], error) {
	return execute[govtypes.MsgDepositResponse](m.runner, govtypes.TypeURLMsgDeposit, msg, signer)
}

func (m Gov) QueryProposal(req *govtypes.QueryProposalRequest) (*govtypes.QueryProposalResponse, error) {
	return query[govtypes.QueryProposalResponse](m.runner, govtypes.QueryPath+"Proposal", req)
}

func (m Gov) QueryProposals(req *govtypes.QueryProposalsRequest) (*govtypes.QueryProposalsResponse, error) {
	return query[govtypes.QueryProposalsResponse](m.runner, govtypes.QueryPath+"Proposals", req)
}

func (m Gov) QueryVote(req *govtypes.QueryVoteRequest) (*govtypes.QueryVoteResponse, error) {
	return query[govtypes.QueryVoteResponse](m.runner, govtypes.QueryPath+"Vote", req)
}

func (m Gov) QueryVotes(req *govtypes.QueryVotesRequest) (*govtypes.QueryVotesResponse, error) {
	return query[govtypes.QueryVotesResponse](m.runner, govtypes.QueryPath+"Votes", req)
}

func (m Gov) QueryDeposit(req *govtypes.QueryDepositRequest) (*govtypes.QueryDepositResponse, error) {
	return query[govtypes.QueryDepositResponse](m.runner, govtypes.QueryPath+"Deposit", req)
}

func (m Gov) QueryDeposits(req *govtypes.QueryDepositsRequest) (*govtypes.QueryDepositsResponse, error) {
	return query[govtypes.QueryDepositsResponse](m.runner, govtypes.QueryPath+"Deposits", req)
}

func (m Gov) QueryTallyResult(req *govtypes.QueryTallyResultRequest) (*govtypes.QueryTallyResultResponse, error) {
	return query[govtypes.QueryTallyResultResponse](m.runner, govtypes.QueryPath+"TallyResult", req)
}

func (m Gov) QueryParams(req *govtypes.QueryParamsRequest) (*govtypes.QueryParamsResponse, error) {
	return query[govtypes.QueryParamsResponse](m.runner, govtypes.QueryPath+"Params", req)
}
