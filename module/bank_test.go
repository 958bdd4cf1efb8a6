package module_test

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/module"
	sdk "github.com/okx/testtube/types"
	banktypes "github.com/okx/testtube/x/bank/types"
)

func (suite *ModuleTestSuite) TestBankSend() {
	bank := module.NewBank(suite.app)
	a, err := suite.app.InitAccount(sdk.NewCoins(sdk.NewCoin("ucoin", 100), sdk.NewCoin("untrn", 1000000)))
	suite.Require().NoError(err)
	b, err := suite.app.InitAccount(sdk.NewCoins(sdk.NewCoin("untrn", 1)))
	suite.Require().NoError(err)

	res, err := bank.Send(banktypes.MsgSend{
		FromAddress: a.Address(),
		ToAddress:   b.Address(),
		Amount:      sdk.NewCoins(sdk.NewCoin("ucoin", 9)),
	}, a)
	suite.Require().NoError(err)

	suite.Require().Equal(int64(9), suite.balance(b.Address(), "ucoin"))
	suite.Require().Equal(int64(91), suite.balance(a.Address(), "ucoin"))

	fee := a.FeeSetting().(account.AutoFee).GasPrice.MulCeil(res.GasInfo.GasWanted)
	suite.Require().Equal(1000000-fee.AmountOf().Int64(), suite.balance(a.Address(), "untrn"))
}

func (suite *ModuleTestSuite) TestBankQueriesAreIdempotent() {
	bank := module.NewBank(suite.app)
	req := &banktypes.QueryAllBalancesRequest{Address: suite.alice.Address()}

	first, err := bank.QueryAllBalances(req)
	suite.Require().NoError(err)
	second, err := bank.QueryAllBalances(req)
	suite.Require().NoError(err)
	suite.Require().Equal(first, second)
	suite.Require().Equal(int64(1000), first.Balances.AmountOf("uatom").Int64())

	supply, err := bank.QuerySupplyOf(&banktypes.QuerySupplyOfRequest{Denom: "uatom"})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(2000), supply.Amount.AmountOf().Int64())

	meta, err := bank.QueryDenomMetadata(&banktypes.QueryDenomMetadataRequest{Denom: "uatom"})
	suite.Require().NoError(err)
	suite.Require().Equal("uatom", meta.Metadata.Display)
}
