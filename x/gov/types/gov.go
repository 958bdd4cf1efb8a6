package types

import (
	"fmt"
	"math/big"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
)

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus int32

const (
	StatusNil           ProposalStatus = 0
	StatusDepositPeriod ProposalStatus = 1
	StatusVotingPeriod  ProposalStatus = 2
	StatusPassed        ProposalStatus = 3
	StatusRejected      ProposalStatus = 4
	StatusFailed        ProposalStatus = 5
)

var proposalStatusNames = map[ProposalStatus]string{
	StatusNil:           "PROPOSAL_STATUS_UNSPECIFIED",
	StatusDepositPeriod: "PROPOSAL_STATUS_DEPOSIT_PERIOD",
	StatusVotingPeriod:  "PROPOSAL_STATUS_VOTING_PERIOD",
	StatusPassed:        "PROPOSAL_STATUS_PASSED",
	StatusRejected:      "PROPOSAL_STATUS_REJECTED",
	StatusFailed:        "PROPOSAL_STATUS_FAILED",
}

func (s ProposalStatus) String() string {
	if name, ok := proposalStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ProposalStatus(%d)", int32(s))
}

// VoteOption is a choice of a voter.
type VoteOption int32

const (
	OptionEmpty      VoteOption = 0
	OptionYes        VoteOption = 1
	OptionAbstain    VoteOption = 2
	OptionNo         VoteOption = 3
	OptionNoWithVeto VoteOption = 4
)

var voteOptionNames = map[VoteOption]string{
	OptionEmpty:      "VOTE_OPTION_UNSPECIFIED",
	OptionYes:        "VOTE_OPTION_YES",
	OptionAbstain:    "VOTE_OPTION_ABSTAIN",
	OptionNo:         "VOTE_OPTION_NO",
	OptionNoWithVeto: "VOTE_OPTION_NO_WITH_VETO",
}

func (o VoteOption) String() string {
	if name, ok := voteOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("VoteOption(%d)", int32(o))
}

// ValidVoteOption reports whether o can be cast.
func ValidVoteOption(o VoteOption) bool {
	return o >= OptionYes && o <= OptionNoWithVeto
}

// Proposal is a set of messages to be executed by the gov account once
// the proposal passes. Times are unix seconds.
type Proposal struct {
	Id               uint64         `json:"id"`
	Messages         []codec.Any    `json:"messages"`
	Status           ProposalStatus `json:"status"`
	FinalTallyResult TallyResult    `json:"final_tally_result"`
	SubmitTime       int64          `json:"submit_time"`
	DepositEndTime   int64          `json:"deposit_end_time"`
	TotalDeposit     sdk.Coins      `json:"total_deposit"`
	VotingStartTime  int64          `json:"voting_start_time"`
	VotingEndTime    int64          `json:"voting_end_time"`
	Metadata         string         `json:"metadata"`
	Title            string         `json:"title"`
	Summary          string         `json:"summary"`
	Proposer         string         `json:"proposer"`
	Expedited        bool           `json:"expedited"`
	FailedReason     string         `json:"failed_reason"`
}

// TallyResult holds the voting power behind every option as base-10
// integers.
type TallyResult struct {
	YesCount        string `json:"yes_count"`
	AbstainCount    string `json:"abstain_count"`
	NoCount         string `json:"no_count"`
	NoWithVetoCount string `json:"no_with_veto_count"`
}

// EmptyTallyResult is the tally of a proposal nobody voted on.
func EmptyTallyResult() TallyResult {
	return TallyResult{YesCount: "0", AbstainCount: "0", NoCount: "0", NoWithVetoCount: "0"}
}

// NewTallyResultFromMap builds a tally from per option voting power.
func NewTallyResultFromMap(results map[VoteOption]*big.Int) TallyResult {
	get := func(o VoteOption) string {
		if v, ok := results[o]; ok {
			return v.String()
		}
		return "0"
	}
	return TallyResult{
		YesCount:        get(OptionYes),
		AbstainCount:    get(OptionAbstain),
		NoCount:         get(OptionNo),
		NoWithVetoCount: get(OptionNoWithVeto),
	}
}

// WeightedVoteOption is an option and the fraction of voting power
// behind it.
type WeightedVoteOption struct {
	Option VoteOption `json:"option"`
	Weight string     `json:"weight"`
}

// Vote is the vote of one voter on one proposal.
type Vote struct {
	ProposalId uint64               `json:"proposal_id"`
	Voter      string               `json:"voter"`
	Options    []WeightedVoteOption `json:"options"`
	Metadata   string               `json:"metadata"`
}

// NewNonSplitVoteOption puts the full voting power behind option.
func NewNonSplitVoteOption(option VoteOption) []WeightedVoteOption {
	return []WeightedVoteOption{{Option: option, Weight: "1"}}
}

// Deposit is the escrowed deposit of one depositor on one proposal.
type Deposit struct {
	ProposalId uint64    `json:"proposal_id"`
	Depositor  string    `json:"depositor"`
	Amount     sdk.Coins `json:"amount"`
}

// Params of the gov module. Periods are in seconds, ratios are decimal
// strings.
type Params struct {
	MinDeposit             sdk.Coins `json:"min_deposit"`
	MaxDepositPeriod       int64     `json:"max_deposit_period"`
	VotingPeriod           int64     `json:"voting_period"`
	ExpeditedVotingPeriod  int64     `json:"expedited_voting_period"`
	Quorum                 string    `json:"quorum"`
	Threshold              string    `json:"threshold"`
	VetoThreshold          string    `json:"veto_threshold"`
	MinInitialDepositRatio string    `json:"min_initial_deposit_ratio"`
	BurnVoteVeto           bool      `json:"burn_vote_veto"`
	MaxMetadataLen         uint64    `json:"max_metadata_len"`
}

// DefaultVotingPeriod is the voting period of a default chain in seconds.
const DefaultVotingPeriod = 60

func DefaultParams() Params {
	return Params{
		MinDeposit:             sdk.Coins{},
		MaxDepositPeriod:       2 * 24 * 3600,
		VotingPeriod:           DefaultVotingPeriod,
		ExpeditedVotingPeriod:  DefaultVotingPeriod / 2,
		Quorum:                 "0.334",
		Threshold:              "0.5",
		VetoThreshold:          "0.334",
		MinInitialDepositRatio: "0",
		BurnVoteVeto:           true,
		MaxMetadataLen:         255,
	}
}

// ParseRatio parses a decimal ratio in [0, 1].
func ParseRatio(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid ratio: %q", s)
	}
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return nil, fmt.Errorf("ratio must be between 0 and 1: %s", s)
	}
	return r, nil
}

func (p Params) Validate() error {
	if err := p.MinDeposit.Validate(); err != nil {
		return fmt.Errorf("invalid minimum deposit: %w", err)
	}
	if p.MaxDepositPeriod <= 0 {
		return fmt.Errorf("maximum deposit period must be positive: %d", p.MaxDepositPeriod)
	}
	if p.VotingPeriod <= 0 {
		return fmt.Errorf("voting period must be positive: %d", p.VotingPeriod)
	}
	if p.ExpeditedVotingPeriod <= 0 || p.ExpeditedVotingPeriod > p.VotingPeriod {
		return fmt.Errorf("expedited voting period must be positive and at most the voting period: %d", p.ExpeditedVotingPeriod)
	}
	for name, ratio := range map[string]string{
		"quorum":                        p.Quorum,
		"threshold":                     p.Threshold,
		"veto threshold":                p.VetoThreshold,
		"minimum initial deposit ratio": p.MinInitialDepositRatio,
	} {
		if _, err := ParseRatio(ratio); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
