package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	marketmaptypes "github.com/okx/testtube/x/marketmap/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

// Slinky is the market listing flow in one place: markets are created
// through the marketmap and their prices read back from the oracle.
type Slinky struct {
	marketmap Marketmap
	oracle    Oracle
}

func NewSlinky(r runner.Runner) Slinky {
	return Slinky{marketmap: NewMarketmap(r), oracle: NewOracle(r)}
}

func (m Slinky) CreateMarkets(msg marketmaptypes.MsgCreateMarkets, signer *account.SigningAccount) (*runner.ExecuteResponse[marketmaptypes.MsgCreateMarketsResponse], error) {
	return m.marketmap.CreateMarkets(msg, signer)
}

func (m Slinky) GetAllCurrencyPairs(req *oracletypes.GetAllCurrencyPairsRequest) (*oracletypes.GetAllCurrencyPairsResponse, error) {
	return m.oracle.GetAllCurrencyPairs(req)
}

func (m Slinky) GetPrice(req *oracletypes.GetPriceRequest) (*oracletypes.GetPriceResponse, error) {
	return m.oracle.GetPrice(req)
}

func (m Slinky) GetPrices(req *oracletypes.GetPricesRequest) (*oracletypes.GetPricesResponse, error) {
	return m.oracle.GetPrices(req)
}

func (m Slinky) GetCurrencyPairMapping(req *oracletypes.GetCurrencyPairMappingRequest) (*oracletypes.GetCurrencyPairMappingResponse, error) {
	return m.oracle.GetCurrencyPairMapping(req)
}

func (m Slinky) GetParams(req *marketmaptypes.ParamsRequest) (*marketmaptypes.ParamsResponse, error) {
	return m.marketmap.Params(req)
}
