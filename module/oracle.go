package module

import (
	"github.com/okx/testtube/runner"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

// Oracle reads the prices the oracle module stores. It has no messages;
// prices are set through the simulator.
type Oracle struct {
	runner runner.Runner
}

func NewOracle(r runner.Runner) Oracle { return Oracle{runner: r} }

func (m Oracle) GetAllCurrencyPairs(req *oracletypes.GetAllCurrencyPairsRequest) (*oracletypes.GetAllCurrencyPairsResponse, error) {
	return query[oracletypes.GetAllCurrencyPairsResponse](m.runner, oracletypes.QueryPath+"GetAllCurrencyPairs", req)
}

func (m Oracle) GetPrice(req *oracletypes.GetPriceRequest) (*oracletypes.GetPriceResponse, error) {
	return query[oracletypes.GetPriceResponse](m.runner, oracletypes.QueryPath+"GetPrice", req)
}

func (m Oracle) GetPrices(req *oracletypes.GetPricesRequest) (*oracletypes.GetPricesResponse, error) {
	return query[oracletypes.GetPricesResponse](m.runner, oracletypes.QueryPath+"GetPrices", req)
}

func (m Oracle) GetCurrencyPairMapping(req *oracletypes.GetCurrencyPairMappingRequest) (*oracletypes.GetCurrencyPairMappingResponse, error) {
	return query[oracletypes.GetCurrencyPairMappingResponse](m.runner, oracletypes.QueryPath+"GetCurrencyPairMapping", req)
}
