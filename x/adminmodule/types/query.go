package types

type QueryAdminsRequest struct{}

type QueryAdminsResponse struct {
	Admins []string `json:"admins"`
}

type QueryArchivedProposalsRequest struct{}

type QueryArchivedProposalsResponse struct {
	Proposals []ArchivedProposal `json:"proposals"`
}
