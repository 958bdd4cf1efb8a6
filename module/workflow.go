package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/runner"
	govtypes "github.com/okx/testtube/x/gov/types"
)

// steps of ProposeAndExecute, reported in runner.WorkflowError
const (
	StepEncode          = "encode"
	StepSubmit          = "submit"
	StepSelectAuthority = "select-authority"
	StepVote            = "vote"
)

const (
	DefaultVoteFeeDenom      = "untrn"
	DefaultVoteGasAdjustment = 1.3
)

// AuthorityResolver finds an account whose vote alone passes a proposal.
// The simulator answers with its genesis validator.
type AuthorityResolver interface {
	ValidatorSigningAccount(feeDenom string, gasAdjustment float64) (*account.SigningAccount, error)
}

// GovWithAppAccess submits gov proposals and votes them through with an
// account obtained from the chain.
type GovWithAppAccess struct {
	gov       Gov
	authority AuthorityResolver

	voteFeeDenom      string
	voteGasAdjustment float64
}

type GovOption func(*GovWithAppAccess)

// WithVoteFee sets the fee denom and gas adjustment of the vote.
func WithVoteFee(denom string, gasAdjustment float64) GovOption {
	return func(g *GovWithAppAccess) {
		g.voteFeeDenom = denom
		g.voteGasAdjustment = gasAdjustment
	}
}

func NewGovWithAppAccess(r runner.Runner, authority AuthorityResolver, opts ...GovOption) GovWithAppAccess {
	g := GovWithAppAccess{
		gov:               NewGov(r),
		authority:         authority,
		voteFeeDenom:      DefaultVoteFeeDenom,
		voteGasAdjustment: DefaultVoteGasAdjustment,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Gov returns the plain gov façade over the same runner.
func (g GovWithAppAccess) Gov() Gov { return g.gov }

// ProposeAndExecute submits msg as the only message of a proposal and
// votes yes on it with the resolved authority. It returns the submission
// result. Chain time is not advanced, so the proposal is still in its
// voting period when ProposeAndExecute returns.
//
// A failure after submission leaves the proposal on chain without a vote.
func (g GovWithAppAccess) ProposeAndExecute(typeURL string, msg interface{}, proposer string, signer *account.SigningAccount) (*runner.ExecuteResponse[govtypes.MsgSubmitProposalResponse], error) {
	packed, err := codec.NewAny(typeURL, msg)
	if err != nil {
		return nil, &runner.WorkflowError{Step: StepEncode, Err: &runner.EncodeError{TypeURL: typeURL, Err: err}}
	}

	submitted, err := g.gov.SubmitProposal(govtypes.MsgSubmitProposal{
		Messages: []codec.Any{packed},
		Proposer: proposer,
	}, signer)
	if err != nil {
		return nil, &runner.WorkflowError{Step: StepSubmit, Err: err}
	}
	proposalID := submitted.Data.ProposalId

	voter, err := g.authority.ValidatorSigningAccount(g.voteFeeDenom, g.voteGasAdjustment)
	if err != nil {
		return nil, &runner.WorkflowError{Step: StepSelectAuthority, Err: err}
	}

	_, err = g.gov.Vote(govtypes.MsgVote{
		ProposalId: proposalID,
		Voter:      voter.Address(),
		Option:     govtypes.OptionYes,
	}, voter)
	if err != nil {
		return nil, &runner.WorkflowError{Step: StepVote, Err: err}
	}
	return submitted, nil
}
