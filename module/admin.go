package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/runner"
	admintypes "github.com/okx/testtube/x/adminmodule/types"
)

// Admin binds the adminmodule. Proposals submitted by an admin execute in
// the same block, without a vote.
type Admin struct {
	runner runner.Runner
}

func NewAdmin(r runner.Runner) Admin { return Admin{runner: r} }

func (m Admin) AddAdmin(msg admintypes.MsgAddAdmin, signer *account.SigningAccount) (*runner.ExecuteResponse[admintypes.MsgAddAdminResponse], error) {
	return execute[admintypes.MsgAddAdminResponse](m.runner, admintypes.TypeURLMsgAddAdmin, msg, signer)
}

func (m Admin) DeleteAdmin(msg admintypes.MsgDeleteAdmin, signer *account.SigningAccount) (*runner.ExecuteResponse[admintypes.MsgDeleteAdminResponse], error) {
	return execute[admintypes.MsgDeleteAdminResponse](m.runner, admintypes.TypeURLMsgDeleteAdmin, msg, signer)
}

func (m Admin) SubmitProposal(msg admintypes.MsgSubmitProposal, signer *account.SigningAccount) (*runner.ExecuteResponse[admintypes.MsgSubmitProposalResponse], error) {
	return execute[admintypes.MsgSubmitProposalResponse](m.runner, admintypes.TypeURLMsgSubmitProposal, msg, signer)
}

// SubmitExecutableProposal runs msg, encoded under typeURL, as the
// adminmodule account.
func (m Admin) SubmitExecutableProposal(typeURL string, msg interface{}, proposer string, signer *account.SigningAccount) (*runner.ExecuteResponse[admintypes.MsgSubmitProposalResponse], error) {
	packed, err := codec.NewAny(typeURL, msg)
	if err != nil {
		return nil, &runner.EncodeError{TypeURL: typeURL, Err: err}
	}
	return m.SubmitProposal(admintypes.MsgSubmitProposal{
		Messages: []codec.Any{packed},
		Proposer: proposer,
	}, signer)
}

func (m Admin) QueryAdmins(req *admintypes.QueryAdminsRequest) (*admintypes.QueryAdminsResponse, error) {
	return query[admintypes.QueryAdminsResponse](m.runner, admintypes.QueryPath+"Admins", req)
}

func (m Admin) QueryArchivedProposals(req *admintypes.QueryArchivedProposalsRequest) (*admintypes.QueryArchivedProposalsResponse, error) {
	return query[admintypes.QueryArchivedProposalsResponse](m.runner, admintypes.QueryPath+"ArchivedProposals", req)
}
