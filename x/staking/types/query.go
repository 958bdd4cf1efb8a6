package types

type QueryValidatorsRequest struct {
	Status string `json:"status"`
}

type QueryValidatorsResponse struct {
	Validators []Validator `json:"validators"`
}

type QueryValidatorRequest struct {
	ValidatorAddr string `json:"validator_addr"`
}

type QueryValidatorResponse struct {
	Validator Validator `json:"validator"`
}

type QueryPoolRequest struct{}

type Pool struct {
	NotBondedTokens string `json:"not_bonded_tokens"`
	BondedTokens    string `json:"bonded_tokens"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}
