package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	tftypes "github.com/okx/testtube/x/tokenfactory/types"
)

// TokenFactory creates and administers factory/<creator>/<subdenom>
// denoms.
type TokenFactory struct {
	runner runner.Runner
}

func NewTokenFactory(r runner.Runner) TokenFactory { return TokenFactory{runner: r} }

func (m TokenFactory) CreateDenom(msg tftypes.MsgCreateDenom, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgCreateDenomResponse], error) {
	return execute[tftypes.MsgCreateDenomResponse](m.runner, tftypes.TypeURLMsgCreateDenom, msg, signer)
}

func (m TokenFactory) Mint(msg tftypes.MsgMint, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgMintResponse], error) {
	return execute[tftypes.MsgMintResponse](m.runner, tftypes.TypeURLMsgMint, msg, signer)
}

func (m TokenFactory) Burn(msg tftypes.MsgBurn, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgBurnResponse], error) {
	return execute[tftypes.MsgBurnResponse](m.runner, tftypes.TypeURLMsgBurn, msg, signer)
}

func (m TokenFactory) ChangeAdmin(msg tftypes.MsgChangeAdmin, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgChangeAdminResponse], error) {
	return execute[tftypes.MsgChangeAdminResponse](m.runner, tftypes.TypeURLMsgChangeAdmin, msg, signer)
}

func (m TokenFactory) SetDenomMetadata(msg tftypes.MsgSetDenomMetadata, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgSetDenomMetadataResponse], error) {
	return execute[tftypes.MsgSetDenomMetadataResponse](m.runner, tftypes.TypeURLMsgSetDenomMetadata, msg, signer)
}

// UpdateParams must be signed by the gov authority, so it is usually
// submitted through a proposal.
func (m TokenFactory) UpdateParams(msg tftypes.MsgUpdateParams, signer *account.SigningAccount) (*runner.ExecuteResponse[tftypes.MsgUpdateParamsResponse], error) {
	return execute[tftypes.MsgUpdateParamsResponse](m.runner, tftypes.TypeURLMsgUpdateParams, msg, signer)
}

func (m TokenFactory) QueryParams(req *tftypes.QueryParamsRequest) (*tftypes.QueryParamsResponse, error) {
	return query[tftypes.QueryParamsResponse](m.runner, tftypes.QueryPath+"Params", req)
}

func (m TokenFactory) QueryDenomAuthorityMetadata(req *tftypes.QueryDenomAuthorityMetadataRequest) (*tftypes.QueryDenomAuthorityMetadataResponse, error) {
	return query[tftypes.QueryDenomAuthorityMetadataResponse](m.runner, tftypes.QueryPath+"DenomAuthorityMetadata", req)
}

func (m TokenFactory) QueryDenomsFromCreator(req *tftypes.QueryDenomsFromCreatorRequest) (*tftypes.QueryDenomsFromCreatorResponse, error) {
	return query[tftypes.QueryDenomsFromCreatorResponse](m.runner, tftypes.QueryPath+"DenomsFromCreator", req)
}
