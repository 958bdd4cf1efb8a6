package module_test

import (
	"github.com/okx/testtube/module"
	"github.com/okx/testtube/runner"
	marketmaptypes "github.com/okx/testtube/x/marketmap/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

func ntrnUSDCMarket() marketmaptypes.Market {
	return marketmaptypes.Market{
		Ticker: marketmaptypes.Ticker{
			CurrencyPair:     oracletypes.NewCurrencyPair("NTRN", "USDC"),
			Decimals:         6,
			MinProviderCount: 1,
			Enabled:          true,
		},
		ProviderConfigs: []marketmaptypes.ProviderConfig{{
			Name:           "kucoin_ws",
			OffChainTicker: "NTRN-USDC",
		}},
	}
}

func (suite *ModuleTestSuite) TestSlinky() {
	slinky := module.NewSlinky(suite.app)
	atom := oracletypes.NewCurrencyPair("ATOM", "USDT")
	ntrn := oracletypes.NewCurrencyPair("NTRN", "USDC")

	pairs, err := slinky.GetAllCurrencyPairs(&oracletypes.GetAllCurrencyPairsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal([]oracletypes.CurrencyPair{atom}, pairs.CurrencyPairs)

	price, err := slinky.GetPrice(&oracletypes.GetPriceRequest{CurrencyPair: atom})
	suite.Require().NoError(err)
	suite.Require().Equal("4480000", price.Price.Price)
	suite.Require().Equal(uint64(8), price.Decimals)

	params, err := slinky.GetParams(&marketmaptypes.ParamsRequest{})
	suite.Require().NoError(err)
	val := suite.validator()
	suite.Require().Contains(params.Params.MarketAuthorities, val.Address())

	_, err = slinky.CreateMarkets(marketmaptypes.MsgCreateMarkets{
		Authority:     val.Address(),
		CreateMarkets: []marketmaptypes.Market{ntrnUSDCMarket()},
	}, val)
	suite.Require().NoError(err)

	pairs, err = slinky.GetAllCurrencyPairs(&oracletypes.GetAllCurrencyPairsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal([]oracletypes.CurrencyPair{atom, ntrn}, pairs.CurrencyPairs)

	price, err = slinky.GetPrice(&oracletypes.GetPriceRequest{CurrencyPair: ntrn})
	suite.Require().NoError(err)
	suite.Require().Equal("0", price.Price.Price)
	suite.Require().Equal(uint64(6), price.Decimals)
	suite.Require().Equal(uint64(1), price.Id)

	suite.Require().NoError(suite.app.SetPriceForCurrencyPair(ntrn, "5000000"))
	prices, err := slinky.GetPrices(&oracletypes.GetPricesRequest{CurrencyPairIds: []string{"ATOM/USDT", "NTRN/USDC"}})
	suite.Require().NoError(err)
	suite.Require().Len(prices.Prices, 2)
	suite.Require().Equal("5000000", prices.Prices[1].Price.Price)
	suite.Require().Equal(suite.app.BlockTimeSeconds(), prices.Prices[1].Price.BlockTimestamp)

	mapping, err := slinky.GetCurrencyPairMapping(&oracletypes.GetCurrencyPairMappingRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal([]oracletypes.CurrencyPairMapping{
		{Id: 0, CurrencyPair: atom},
		{Id: 1, CurrencyPair: ntrn},
	}, mapping.CurrencyPairMapping)
}

func (suite *ModuleTestSuite) TestMarketmap() {
	marketmap := module.NewMarketmap(suite.app)
	val := suite.validator()

	_, err := marketmap.CreateMarkets(marketmaptypes.MsgCreateMarkets{
		Authority:     suite.alice.Address(),
		CreateMarkets: []marketmaptypes.Market{ntrnUSDCMarket()},
	}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)

	_, err = marketmap.CreateMarkets(marketmaptypes.MsgCreateMarkets{
		Authority:     val.Address(),
		CreateMarkets: []marketmaptypes.Market{ntrnUSDCMarket()},
	}, val)
	suite.Require().NoError(err)
	height := suite.app.BlockHeight()

	market, err := marketmap.Market(&marketmaptypes.MarketRequest{CurrencyPair: oracletypes.NewCurrencyPair("NTRN", "USDC")})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(6), market.Market.Ticker.Decimals)

	updated := ntrnUSDCMarket()
	updated.Ticker.Decimals = 8
	_, err = marketmap.UpdateMarkets(marketmaptypes.MsgUpdateMarkets{
		Authority:     val.Address(),
		UpdateMarkets: []marketmaptypes.Market{updated},
	}, val)
	suite.Require().NoError(err)

	all, err := marketmap.MarketMap(&marketmaptypes.MarketMapRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(all.MarketMap.Markets, 1)
	suite.Require().Equal(uint64(8), all.MarketMap.Markets[0].Ticker.Decimals)

	last, err := marketmap.LastUpdated(&marketmaptypes.LastUpdatedRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(height+1), last.LastUpdated)
}
