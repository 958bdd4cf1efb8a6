package module_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/app"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/module"
	sdk "github.com/okx/testtube/types"
	banktypes "github.com/okx/testtube/x/bank/types"
)

type ModuleTestSuite struct {
	suite.Suite

	app   *app.TestApp
	alice *account.SigningAccount
	bob   *account.SigningAccount
}

func (suite *ModuleTestSuite) SetupTest() {
	var err error
	suite.app, err = app.NewWithLogger(app.DefaultConfig(), log.NewNopLogger())
	suite.Require().NoError(err)

	accs, err := suite.app.InitAccounts(sdk.NewCoins(sdk.NewCoin("untrn", 1000000000), sdk.NewCoin("uatom", 1000)), 2)
	suite.Require().NoError(err)
	suite.alice, suite.bob = accs[0], accs[1]
}

func TestModuleTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (suite *ModuleTestSuite) balance(addr, denom string) int64 {
	res, err := module.NewBank(suite.app).QueryBalance(&banktypes.QueryBalanceRequest{Address: addr, Denom: denom})
	suite.Require().NoError(err)
	return res.Balance.AmountOf().Int64()
}

func (suite *ModuleTestSuite) validator() *account.SigningAccount {
	val, err := suite.app.ValidatorSigningAccount("untrn", 1.3)
	suite.Require().NoError(err)
	return val
}
