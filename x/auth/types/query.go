package types

type QueryAccountRequest struct {
	Address string `json:"address"`
}

type QueryAccountResponse struct {
	Account BaseAccount `json:"account"`
}

type QueryModuleAccountByNameRequest struct {
	Name string `json:"name"`
}

type QueryModuleAccountByNameResponse struct {
	Account ModuleAccount `json:"account"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}
