package module_test

import (
	"fmt"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/module"
	"github.com/okx/testtube/runner"
	sdk "github.com/okx/testtube/types"
	tftypes "github.com/okx/testtube/x/tokenfactory/types"
)

func (suite *ModuleTestSuite) TestCreateDenom() {
	tf := module.NewTokenFactory(suite.app)

	res, err := tf.CreateDenom(tftypes.MsgCreateDenom{Sender: suite.alice.Address(), Subdenom: "udenom"}, suite.alice)
	suite.Require().NoError(err)
	denom := fmt.Sprintf("factory/%s/udenom", suite.alice.Address())
	suite.Require().Equal(denom, res.Data.NewTokenDenom)

	meta, err := tf.QueryDenomAuthorityMetadata(&tftypes.QueryDenomAuthorityMetadataRequest{
		Creator:  suite.alice.Address(),
		Subdenom: "udenom",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(suite.alice.Address(), meta.AuthorityMetadata.Admin)

	_, err = tf.Mint(tftypes.MsgMint{
		Sender:        suite.alice.Address(),
		Amount:        sdk.NewCoin(denom, 500),
		MintToAddress: suite.bob.Address(),
	}, suite.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(500), suite.balance(suite.bob.Address(), denom))

	// only the admin mints
	_, err = tf.Mint(tftypes.MsgMint{Sender: suite.bob.Address(), Amount: sdk.NewCoin(denom, 1)}, suite.bob)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)

	_, err = tf.ChangeAdmin(tftypes.MsgChangeAdmin{
		Sender:   suite.alice.Address(),
		Denom:    denom,
		NewAdmin: suite.bob.Address(),
	}, suite.alice)
	suite.Require().NoError(err)
	_, err = tf.Burn(tftypes.MsgBurn{Sender: suite.bob.Address(), Amount: sdk.NewCoin(denom, 200)}, suite.bob)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(300), suite.balance(suite.bob.Address(), denom))
}

func (suite *ModuleTestSuite) TestCreateDenomsAtomically() {
	tf := module.NewTokenFactory(suite.app)
	create := func(subdenom string) runner.Msg {
		return runner.Msg{
			Value:   tftypes.MsgCreateDenom{Sender: suite.alice.Address(), Subdenom: subdenom},
			TypeURL: tftypes.TypeURLMsgCreateDenom,
		}
	}

	res, err := runner.ExecuteMultiple[tftypes.MsgCreateDenomResponse](suite.app, []runner.Msg{create("ua"), create("ub")}, suite.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(fmt.Sprintf("factory/%s/ua", suite.alice.Address()), res.Data.NewTokenDenom)
	var second tftypes.MsgCreateDenomResponse
	suite.Require().NoError(res.DecodeMsgResponse(1, &second))
	suite.Require().Equal(fmt.Sprintf("factory/%s/ub", suite.alice.Address()), second.NewTokenDenom)

	// a fixed fee skips simulation, so the batch is delivered, passes the
	// ante handler and the duplicate reverts it in the message phase
	suite.alice.WithFeeSetting(account.CustomFee{
		Amount:   sdk.NewCoins(sdk.NewCoin("untrn", 5000)),
		GasLimit: 2000000,
	})
	before := suite.balance(suite.alice.Address(), "untrn")
	_, err = runner.ExecuteMultiple[tftypes.MsgCreateDenomResponse](suite.app, []runner.Msg{create("uc"), create("ua")}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)
	suite.Require().Contains(execErr.Msg, "message index: 1")
	suite.Require().Equal(before-5000, suite.balance(suite.alice.Address(), "untrn"))

	seq, err := suite.app.AccountSequence(suite.alice.Address())
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), seq)
	suite.Require().Equal(uint64(2), suite.alice.Sequence())

	denoms, err := tf.QueryDenomsFromCreator(&tftypes.QueryDenomsFromCreatorRequest{Creator: suite.alice.Address()})
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{
		fmt.Sprintf("factory/%s/ua", suite.alice.Address()),
		fmt.Sprintf("factory/%s/ub", suite.alice.Address()),
	}, denoms.Denoms)
	suite.Require().Equal(uint64(2), suite.alice.Submitted())
	suite.Require().Equal(uint64(1), suite.alice.Succeeded())

	_, err = tf.QueryDenomAuthorityMetadata(&tftypes.QueryDenomAuthorityMetadataRequest{
		Creator:  suite.alice.Address(),
		Subdenom: "uc",
	})
	suite.Require().ErrorContains(err, "denom does not exist")
}

func (suite *ModuleTestSuite) TestAutoFeeRejectsRevertingTxAtSimulation() {
	tf := module.NewTokenFactory(suite.app)
	_, err := tf.CreateDenom(tftypes.MsgCreateDenom{Sender: suite.alice.Address(), Subdenom: "ua"}, suite.alice)
	suite.Require().NoError(err)
	height := suite.app.BlockHeight()

	_, err = tf.CreateDenom(tftypes.MsgCreateDenom{Sender: suite.alice.Address(), Subdenom: "ua"}, suite.alice)
	var execErr *runner.ExecuteError
	suite.Require().ErrorAs(err, &execErr)

	suite.Require().Equal(height, suite.app.BlockHeight())
	suite.Require().Equal(uint64(1), suite.alice.Submitted())
	suite.Require().Equal(uint64(1), suite.alice.Sequence())
}
