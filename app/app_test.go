package app_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/app"
	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/runner"
	sdk "github.com/okx/testtube/types"
	authtypes "github.com/okx/testtube/x/auth/types"
	banktypes "github.com/okx/testtube/x/bank/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

type AppTestSuite struct {
	suite.Suite

	app   *app.TestApp
	alice *account.SigningAccount
	bob   *account.SigningAccount
}

func (suite *AppTestSuite) SetupTest() {
	var err error
	suite.app, err = app.NewWithLogger(app.DefaultConfig(), log.NewNopLogger())
	suite.Require().NoError(err)

	accs, err := suite.app.InitAccounts(sdk.NewCoins(sdk.NewCoin("untrn", 1000000000), sdk.NewCoin("uatom", 1000)), 2)
	suite.Require().NoError(err)
	suite.alice, suite.bob = accs[0], accs[1]
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (suite *AppTestSuite) send(from *account.SigningAccount, to string, amt sdk.Coins) (*runner.ExecuteResponse[banktypes.MsgSendResponse], error) {
	return runner.Execute[banktypes.MsgSendResponse](suite.app, banktypes.MsgSend{
		FromAddress: from.Address(),
		ToAddress:   to,
		Amount:      amt,
	}, banktypes.TypeURLMsgSend, from)
}

func (suite *AppTestSuite) balance(addr, denom string) int64 {
	coin, err := suite.app.Balance(addr, denom)
	suite.Require().NoError(err)
	return coin.AmountOf().Int64()
}

func (suite *AppTestSuite) TestGenesis() {
	suite.Require().Equal(int64(1), suite.app.BlockHeight())
	suite.Require().Equal(app.DefaultGenesisTime, suite.app.BlockTimeSeconds())

	operator, err := suite.app.FirstValidatorAddress()
	suite.Require().NoError(err)
	suite.Require().True(strings.HasPrefix(operator, "neutronvaloper1"))
	suite.Require().Len(suite.app.FirstValidatorPrivateKey(), account.PrivKeySize)
}

func (suite *AppTestSuite) TestInitAccountsDoesNotProduceBlocks() {
	suite.Require().Equal(int64(1), suite.app.BlockHeight())
	suite.Require().Equal(int64(1000), suite.balance(suite.alice.Address(), "uatom"))
	suite.Require().NotEqual(suite.alice.Address(), suite.bob.Address())

	res, err := runner.Query[banktypes.QueryDenomMetadataResponse](suite.app, banktypes.QueryPath+"DenomMetadata",
		&banktypes.QueryDenomMetadataRequest{Denom: "uatom"})
	suite.Require().NoError(err)
	suite.Require().Equal("uatom", res.Metadata.Base)
	suite.Require().Equal([]banktypes.DenomUnit{{Denom: "uatom", Exponent: 0}}, res.Metadata.DenomUnits)
}

func (suite *AppTestSuite) TestExecuteOneBlockPerTx() {
	before := suite.app.BlockTime()
	feeCollector := suite.app.ModuleAddress(authtypes.FeeCollectorName)
	collected := suite.balance(feeCollector, "untrn")

	res, err := suite.send(suite.alice, suite.bob.Address(), sdk.NewCoins(sdk.NewCoin("uatom", 10)))
	suite.Require().NoError(err)
	suite.Require().Len(res.MsgResponses, 1)
	suite.Require().NotZero(res.GasInfo.GasUsed)
	suite.Require().LessOrEqual(res.GasInfo.GasUsed, res.GasInfo.GasWanted)

	suite.Require().Equal(int64(2), suite.app.BlockHeight())
	suite.Require().Equal(before.Add(3*time.Second), suite.app.BlockTime())
	suite.Require().Equal(int64(990), suite.balance(suite.alice.Address(), "uatom"))
	suite.Require().Equal(int64(1010), suite.balance(suite.bob.Address(), "uatom"))
	suite.Require().Greater(suite.balance(feeCollector, "untrn"), collected)

	suite.Require().Equal(uint64(1), suite.alice.Sequence())
	suite.Require().Equal(uint64(1), suite.alice.Submitted())
	suite.Require().Equal(uint64(1), suite.alice.Succeeded())
	seq, err := suite.app.AccountSequence(suite.alice.Address())
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), seq)
}

func (suite *AppTestSuite) TestRevertedTxConsumesSequence() {
	suite.alice.WithFeeSetting(account.CustomFee{
		Amount:   sdk.NewCoins(sdk.NewCoin("untrn", 500)),
		GasLimit: 500000,
	})

	_, err := suite.send(suite.alice, suite.bob.Address(), sdk.NewCoins(sdk.NewCoin("uatom", 5000)))
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().Contains(execErr.Msg, "failed to execute message; message index: 0")

	suite.Require().Equal(uint64(1), suite.alice.Sequence())
	suite.Require().Equal(uint64(1), suite.alice.Submitted())
	suite.Require().Equal(uint64(0), suite.alice.Succeeded())
	suite.Require().Equal(int64(1000), suite.balance(suite.alice.Address(), "uatom"))
	suite.Require().Equal(int64(1000000000-500), suite.balance(suite.alice.Address(), "untrn"))
}

func (suite *AppTestSuite) TestRejectedTxKeepsSequence() {
	suite.alice.WithFeeSetting(account.CustomFee{
		Amount:   sdk.NewCoins(sdk.NewCoin("uatom", 5000)),
		GasLimit: 500000,
	})

	_, err := suite.send(suite.alice, suite.bob.Address(), sdk.NewCoins(sdk.NewCoin("uatom", 1)))
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().Contains(execErr.Msg, "insufficient fee")

	suite.Require().Equal(uint64(0), suite.alice.Sequence())
	suite.Require().Equal(uint64(0), suite.alice.Submitted())
	suite.Require().Equal(int64(1000), suite.balance(suite.alice.Address(), "uatom"))
}

func (suite *AppTestSuite) TestExecuteMultipleIsAtomic() {
	sendAtom := func(amount int64) runner.Msg {
		return runner.Msg{Value: banktypes.MsgSend{
			FromAddress: suite.alice.Address(),
			ToAddress:   suite.bob.Address(),
			Amount:      sdk.NewCoins(sdk.NewCoin("uatom", amount)),
		}, TypeURL: banktypes.TypeURLMsgSend}
	}

	res, err := runner.ExecuteMultiple[banktypes.MsgSendResponse](suite.app, []runner.Msg{sendAtom(100), sendAtom(500)}, suite.alice)
	suite.Require().NoError(err)
	suite.Require().Len(res.MsgResponses, 2)
	suite.Require().Equal(int64(400), suite.balance(suite.alice.Address(), "uatom"))

	suite.alice.WithFeeSetting(account.CustomFee{
		Amount:   sdk.NewCoins(sdk.NewCoin("untrn", 500)),
		GasLimit: 500000,
	})
	_, err = runner.ExecuteMultiple[banktypes.MsgSendResponse](suite.app, []runner.Msg{sendAtom(300), sendAtom(300)}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().Contains(execErr.Msg, "message index: 1")
	suite.Require().Equal(int64(400), suite.balance(suite.alice.Address(), "uatom"))
	suite.Require().Equal(uint64(2), suite.alice.Submitted())
	suite.Require().Equal(uint64(1), suite.alice.Succeeded())
}

func (suite *AppTestSuite) TestQueryRouteNotFound() {
	path := "/neutron.dex.Query/EstimateMultiHopSwap"
	_, err := runner.Query[banktypes.QueryBalanceResponse](suite.app, path, &banktypes.QueryBalanceRequest{})
	suite.Require().ErrorIs(err, runner.ErrRouteNotFound)
	suite.Require().EqualError(err, "No route found for `/neutron.dex.Query/EstimateMultiHopSwap`")
}

func (suite *AppTestSuite) TestQueryError() {
	_, err := runner.Query[banktypes.QueryBalanceResponse](suite.app, banktypes.QueryPath+"Balance",
		&banktypes.QueryBalanceRequest{Address: "not-an-address", Denom: "untrn"})
	var queryErr *runner.QueryError
	suite.Require().ErrorAs(err, &queryErr)
}

func (suite *AppTestSuite) TestIncreaseTime() {
	before := suite.app.BlockTime()
	suite.Require().NoError(suite.app.IncreaseTime(10))
	suite.Require().Equal(int64(2), suite.app.BlockHeight())
	suite.Require().Equal(before.Add(10*time.Second), suite.app.BlockTime())
}

func (suite *AppTestSuite) TestParamSet() {
	bz, err := suite.app.GetParamSet(banktypes.ModuleName, banktypes.ParamsTypeURL)
	suite.Require().NoError(err)
	var params banktypes.Params
	suite.Require().NoError(codec.Unmarshal(bz, &params))
	suite.Require().True(params.DefaultSendEnabled)

	packed, err := codec.NewAny(banktypes.ParamsTypeURL, banktypes.Params{DefaultSendEnabled: false})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.SetParamSet(banktypes.ModuleName, packed))

	bz, err = suite.app.GetParamSet(banktypes.ModuleName, banktypes.ParamsTypeURL)
	suite.Require().NoError(err)
	suite.Require().NoError(codec.Unmarshal(bz, &params))
	suite.Require().False(params.DefaultSendEnabled)

	_, err = suite.app.GetParamSet(banktypes.ModuleName, "/cosmos.gov.v1.Params")
	suite.Require().Error(err)
}

func (suite *AppTestSuite) TestValidatorSigningAccount() {
	val, err := suite.app.ValidatorSigningAccount("untrn", 1.3)
	suite.Require().NoError(err)

	_, err = suite.send(val, suite.bob.Address(), sdk.NewCoins(sdk.NewCoin("untrn", 7)))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1000000007), suite.balance(suite.bob.Address(), "untrn"))
	suite.Require().Equal(uint64(1), val.Sequence())
}

func (suite *AppTestSuite) TestSetPriceForCurrencyPair() {
	cp := oracletypes.NewCurrencyPair("ATOM", "USDT")
	suite.Require().NoError(suite.app.SetPriceForCurrencyPair(cp, "5000000"))
	suite.Require().Equal(int64(2), suite.app.BlockHeight())

	res, err := runner.Query[oracletypes.GetPriceResponse](suite.app, oracletypes.QueryPath+"GetPrice",
		&oracletypes.GetPriceRequest{CurrencyPair: cp})
	suite.Require().NoError(err)
	suite.Require().Equal("5000000", res.Price.Price)
	suite.Require().Equal(uint64(2), res.Price.BlockHeight)
	suite.Require().Equal(suite.app.BlockTimeSeconds(), res.Price.BlockTimestamp)
}

func (suite *AppTestSuite) TestRoutes() {
	msgs, queries := suite.app.Routes()
	suite.Require().Contains(msgs, banktypes.TypeURLMsgSend)
	suite.Require().Contains(msgs, "/neutron.dex.MsgPlaceLimitOrder")
	suite.Require().NotContains(msgs, "/neutron.dex.MsgMultiHopSwap")
	suite.Require().Contains(queries, "/slinky.oracle.v1.Query/GetPrice")
}

func TestMetrics(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Metrics = true
	testApp, err := app.NewWithLogger(cfg, log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, testApp.IncreaseTime(1))

	families, err := testApp.MetricsRegistry().Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			}
		}
	}
	require.Equal(t, float64(2), values["testtube_simulator_block_height"])
	require.Equal(t, float64(1), values["testtube_simulator_blocks_total"])
}

func TestReadConfig(t *testing.T) {
	v := viper.New()
	v.Set(app.FlagChainID, "testing-1")
	v.Set(app.FlagBlockInterval, "5s")

	cfg, err := app.ReadConfig(v)
	require.NoError(t, err)
	require.Equal(t, "testing-1", cfg.ChainID)
	require.Equal(t, 5*time.Second, cfg.BlockInterval)
	require.Equal(t, app.DefaultFeeDenom, cfg.FeeDenom)
	require.Equal(t, 60*time.Second, cfg.VotingPeriod)

	v.Set(app.FlagGasAdjustment, -1)
	_, err = app.ReadConfig(v)
	require.Error(t, err)
}
