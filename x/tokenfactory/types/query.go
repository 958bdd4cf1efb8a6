package types

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryDenomAuthorityMetadataRequest struct {
	Creator  string `json:"creator"`
	Subdenom string `json:"subdenom"`
}

type QueryDenomAuthorityMetadataResponse struct {
	AuthorityMetadata DenomAuthorityMetadata `json:"authority_metadata"`
}

type QueryDenomsFromCreatorRequest struct {
	Creator string `json:"creator"`
}

type QueryDenomsFromCreatorResponse struct {
	Denoms []string `json:"denoms"`
}
