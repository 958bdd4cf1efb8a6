package types

type QueryProposalRequest struct {
	ProposalId uint64 `json:"proposal_id"`
}

type QueryProposalResponse struct {
	Proposal Proposal `json:"proposal"`
}

// QueryProposalsRequest filters proposals. Zero values match all.
type QueryProposalsRequest struct {
	ProposalStatus ProposalStatus `json:"proposal_status"`
	Voter          string         `json:"voter"`
	Depositor      string         `json:"depositor"`
}

type QueryProposalsResponse struct {
	Proposals []Proposal `json:"proposals"`
}

type QueryVoteRequest struct {
	ProposalId uint64 `json:"proposal_id"`
	Voter      string `json:"voter"`
}

type QueryVoteResponse struct {
	Vote Vote `json:"vote"`
}

type QueryVotesRequest struct {
	ProposalId uint64 `json:"proposal_id"`
}

type QueryVotesResponse struct {
	Votes []Vote `json:"votes"`
}

type QueryDepositRequest struct {
	ProposalId uint64 `json:"proposal_id"`
	Depositor  string `json:"depositor"`
}

type QueryDepositResponse struct {
	Deposit Deposit `json:"deposit"`
}

type QueryDepositsRequest struct {
	ProposalId uint64 `json:"proposal_id"`
}

type QueryDepositsResponse struct {
	Deposits []Deposit `json:"deposits"`
}

type QueryTallyResultRequest struct {
	ProposalId uint64 `json:"proposal_id"`
}

type QueryTallyResultResponse struct {
	Tally TallyResult `json:"tally"`
}

type QueryParamsRequest struct {
	ParamsType string `json:"params_type"`
}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}
