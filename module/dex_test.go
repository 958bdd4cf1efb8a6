package module_test

import (
	"github.com/okx/testtube/module"
	"github.com/okx/testtube/runner"
	sdk "github.com/okx/testtube/types"
	dextypes "github.com/okx/testtube/x/dex/types"
)

func (suite *ModuleTestSuite) TestDexPlaceAndCancelLimitOrder() {
	dex := module.NewDex(suite.app)

	res, err := dex.PlaceLimitOrder(dextypes.MsgPlaceLimitOrder{
		Creator:          suite.alice.Address(),
		Receiver:         suite.alice.Address(),
		TokenIn:          "uatom",
		TokenOut:         "untrn",
		TickIndexInToOut: 5,
		AmountIn:         "10",
		OrderType:        dextypes.GOOD_TIL_CANCELLED,
	}, suite.alice)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(res.Data.TrancheKey)
	suite.Require().Equal(sdk.NewCoin("uatom", 10), res.Data.CoinIn)
	suite.Require().Equal(int64(990), suite.balance(suite.alice.Address(), "uatom"))

	liquidity, err := dex.TickLiquidityAll(&dextypes.QueryAllTickLiquidityRequest{PairId: "uatom<>untrn", TokenIn: "untrn"})
	suite.Require().NoError(err)
	suite.Require().Len(liquidity.TickLiquidity, 1)
	suite.Require().NotNil(liquidity.TickLiquidity[0].LimitOrderTranche)
	suite.Require().Equal(int64(5), liquidity.TickLiquidity[0].TickIndex())

	orders, err := dex.LimitOrderTrancheUserAllByAddress(&dextypes.QueryAllLimitOrderTrancheUserByAddressRequest{Address: suite.alice.Address()})
	suite.Require().NoError(err)
	suite.Require().Len(orders.LimitOrders, 1)
	suite.Require().Equal(res.Data.TrancheKey, orders.LimitOrders[0].TrancheKey)
	suite.Require().Equal("10", orders.LimitOrders[0].SharesOwned)

	cancelled, err := dex.CancelLimitOrder(dextypes.MsgCancelLimitOrder{
		Creator:    suite.alice.Address(),
		TrancheKey: res.Data.TrancheKey,
	}, suite.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin("uatom", 10), cancelled.Data.MakerCoinOut)
	suite.Require().Equal(int64(1000), suite.balance(suite.alice.Address(), "uatom"))
}

func (suite *ModuleTestSuite) TestDexUnsupportedRoutes() {
	dex := module.NewDex(suite.app)

	_, err := dex.EstimateMultiHopSwap(&dextypes.QueryEstimateMultiHopSwapRequest{})
	suite.Require().ErrorIs(err, runner.ErrRouteNotFound)
	suite.Require().EqualError(err, "No route found for `/neutron.dex.Query/EstimateMultiHopSwap`")

	_, err = dex.EstimatePlaceLimitOrder(&dextypes.QueryEstimatePlaceLimitOrderRequest{})
	var notFound *runner.RouteNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Require().Equal(dextypes.QueryPath+"EstimatePlaceLimitOrder", notFound.Path)

	height := suite.app.BlockHeight()
	_, err = dex.MultiHopSwap(dextypes.MsgMultiHopSwap{
		Creator:  suite.alice.Address(),
		Receiver: suite.alice.Address(),
		Routes:   []dextypes.MultiHopRoute{{Hops: []string{"uatom", "untrn"}}},
		AmountIn: "10",
	}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().Equal(height, suite.app.BlockHeight())
	suite.Require().Zero(suite.alice.Submitted())
}
