package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/testutil"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/marketmap/keeper"
	"github.com/okx/testtube/x/marketmap/types"
	oraclekeeper "github.com/okx/testtube/x/oracle/keeper"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

const prefix = "neutron"

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	keeper    *keeper.Keeper
	oracle    oraclekeeper.Keeper
	validator string
	gov       string
	alice     string
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.ctx = testutil.DefaultContext()
	suite.validator = testutil.Addr(prefix, "validator")
	suite.gov = testutil.Addr(prefix, "gov")
	suite.alice = testutil.Addr(prefix, "alice")

	suite.oracle = oraclekeeper.NewKeeper(oracletypes.StoreKey)
	suite.Require().NoError(suite.oracle.InitGenesis(suite.ctx, oracletypes.DefaultGenesisState()))
	suite.keeper = keeper.NewKeeper(types.StoreKey, suite.gov)
	suite.keeper.SetHooks(suite.oracle.Hooks())
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, types.DefaultParams([]string{suite.validator, suite.gov}, suite.gov)))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func market(base, quote string, decimals uint64) types.Market {
	return types.Market{
		Ticker: types.Ticker{
			CurrencyPair:     oracletypes.NewCurrencyPair(base, quote),
			Decimals:         decimals,
			MinProviderCount: 1,
			Enabled:          true,
		},
		ProviderConfigs: []types.ProviderConfig{{Name: "margined", OffChainTicker: base + "/USD"}},
	}
}

func (suite *KeeperTestSuite) TestCreateMarketsRegistersCurrencyPair() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	msg := types.MsgCreateMarkets{Authority: suite.validator, CreateMarkets: []types.Market{market("NTRN", "USDC", 6)}}
	suite.Require().NoError(msg.ValidateBasic())
	_, err := ms.CreateMarkets(suite.ctx, msg)
	suite.Require().NoError(err)

	suite.Require().Equal([]oracletypes.CurrencyPair{
		oracletypes.NewCurrencyPair("ATOM", "USDT"),
		oracletypes.NewCurrencyPair("NTRN", "USDC"),
	}, suite.oracle.GetAllCurrencyPairs(suite.ctx))
	price, err := suite.oracle.GetPriceWithNonceForCurrencyPair(suite.ctx, oracletypes.NewCurrencyPair("NTRN", "USDC"))
	suite.Require().NoError(err)
	suite.Require().Equal("0", price.Price.Price)
	suite.Require().Equal(uint64(6), price.Decimals)
	suite.Require().Equal(uint64(1), price.Id)

	_, err = ms.CreateMarkets(suite.ctx, msg)
	suite.Require().ErrorIs(err, types.ErrMarketAlreadyExists)

	q := keeper.NewQuerier(suite.keeper)
	res, err := q.MarketMap(suite.ctx, &types.MarketMapRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(res.MarketMap.Markets, 1)
	suite.Require().Equal(uint64(1), res.LastUpdated)
	suite.Require().Equal(testutil.DefaultChainID, res.ChainId)

	one, err := q.Market(suite.ctx, &types.MarketRequest{CurrencyPair: oracletypes.NewCurrencyPair("NTRN", "USDC")})
	suite.Require().NoError(err)
	suite.Require().Equal("margined", one.Market.ProviderConfigs[0].Name)
}

func (suite *KeeperTestSuite) TestCreateMarketsUnauthorized() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.CreateMarkets(suite.ctx, types.MsgCreateMarkets{Authority: suite.alice, CreateMarkets: []types.Market{market("NTRN", "USDC", 6)}})
	suite.Require().ErrorIs(err, types.ErrUnauthorizedAuthority)
	suite.Require().False(suite.keeper.HasMarket(suite.ctx, oracletypes.NewCurrencyPair("NTRN", "USDC")))
}

func (suite *KeeperTestSuite) TestUpdateMarkets() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.UpdateMarkets(suite.ctx, types.MsgUpdateMarkets{Authority: suite.gov, UpdateMarkets: []types.Market{market("NTRN", "USDC", 6)}})
	suite.Require().ErrorIs(err, types.ErrMarketDoesNotExist)

	_, err = ms.CreateMarkets(suite.ctx, types.MsgCreateMarkets{Authority: suite.gov, CreateMarkets: []types.Market{market("NTRN", "USDC", 6)}})
	suite.Require().NoError(err)
	_, err = ms.UpdateMarkets(suite.ctx, types.MsgUpdateMarkets{Authority: suite.gov, UpdateMarkets: []types.Market{market("NTRN", "USDC", 8)}})
	suite.Require().NoError(err)

	price, err := suite.oracle.GetPriceWithNonceForCurrencyPair(suite.ctx, oracletypes.NewCurrencyPair("NTRN", "USDC"))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(8), price.Decimals)
}

func (suite *KeeperTestSuite) TestRemoveMarketAuthorities() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.RemoveMarketAuthorities(suite.ctx, types.MsgRemoveMarketAuthorities{Admin: suite.validator, RemoveAddresses: []string{suite.validator}})
	suite.Require().ErrorIs(err, types.ErrInvalidAdmin)

	_, err = ms.RemoveMarketAuthorities(suite.ctx, types.MsgRemoveMarketAuthorities{Admin: suite.gov, RemoveAddresses: []string{suite.alice}})
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidRequest)

	_, err = ms.RemoveMarketAuthorities(suite.ctx, types.MsgRemoveMarketAuthorities{Admin: suite.gov, RemoveAddresses: []string{suite.validator}})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{suite.gov}, suite.keeper.GetParams(suite.ctx).MarketAuthorities)

	_, err = ms.RemoveMarketAuthorities(suite.ctx, types.MsgRemoveMarketAuthorities{Admin: suite.gov, RemoveAddresses: []string{suite.gov}})
	suite.Require().ErrorIs(err, types.ErrInvalidParams)
}

func (suite *KeeperTestSuite) TestUpdateParams() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	params := types.DefaultParams([]string{suite.alice}, suite.gov)

	_, err := ms.UpdateParams(suite.ctx, types.MsgParams{Authority: suite.validator, Params: params})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = ms.UpdateParams(suite.ctx, types.MsgParams{Authority: suite.gov, Params: params})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.GetParams(suite.ctx).IsAuthority(suite.alice))
}

func (suite *KeeperTestSuite) TestMarketValidation() {
	bad := market("NTRN", "USDC", 6)
	bad.Ticker.MinProviderCount = 2
	msg := types.MsgCreateMarkets{Authority: suite.validator, CreateMarkets: []types.Market{bad}}
	suite.Require().ErrorIs(msg.ValidateBasic(), types.ErrInvalidMarket)

	dup := types.MsgCreateMarkets{Authority: suite.validator, CreateMarkets: []types.Market{market("NTRN", "USDC", 6), market("NTRN", "USDC", 6)}}
	suite.Require().ErrorIs(dup.ValidateBasic(), types.ErrInvalidMarket)

	empty := types.MsgCreateMarkets{Authority: suite.validator}
	suite.Require().ErrorIs(empty.ValidateBasic(), types.ErrInvalidMarket)
}
