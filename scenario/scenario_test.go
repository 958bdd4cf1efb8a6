package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/app"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/scenario"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{
			name:    "empty",
			content: "  \n",
			err:     scenario.ErrEmptyContent,
		},
		{
			name:    "unknown field",
			content: "accounts: []\nsteps: []\nblocks: 3\n",
			err:     scenario.ErrUnmarshalYAML,
		},
		{
			name: "unknown action",
			content: `
steps:
  - action: bank/teleport
`,
			err: scenario.ErrUnknownAction,
		},
		{
			name: "missing signer",
			content: `
accounts:
  - name: alice
    coins: 100untrn
steps:
  - action: bank/send
    args:
      to: $alice
      amount: 1untrn
`,
			err: scenario.ErrInvalidStep,
		},
		{
			name: "unknown signer",
			content: `
steps:
  - action: tokenfactory/create_denom
    signer: carol
    args:
      subdenom: ucarol
`,
			err: scenario.ErrInvalidStep,
		},
		{
			name: "duplicate account",
			content: `
accounts:
  - name: alice
    coins: 100untrn
  - name: alice
    coins: 5uatom
`,
			err: scenario.ErrInvalidAccount,
		},
		{
			name: "reserved account",
			content: `
accounts:
  - name: validator
    coins: 100untrn
`,
			err: scenario.ErrInvalidAccount,
		},
		{
			name: "account without coins",
			content: `
accounts:
  - name: alice
`,
			err: scenario.ErrInvalidAccount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.content))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseValid(t *testing.T) {
	s, err := scenario.Parse([]byte(`
accounts:
  - name: alice
    coins: 10untrn,5uatom
steps:
  - name: price
    action: oracle/get_price
    args:
      pair: ATOM/USDT
  - action: bank/send
    signer: validator
    args:
      to: $alice
      amount: 1untrn
`))
	require.NoError(t, err)
	require.Len(t, s.Accounts, 1)
	require.Len(t, s.Steps, 2)
	require.Equal(t, "validator", s.Steps[1].Signer)
	require.Equal(t, "$alice", s.Steps[1].Args["to"])
}

type ScenarioTestSuite struct {
	suite.Suite

	app    *app.TestApp
	runner *scenario.Runner
}

func (suite *ScenarioTestSuite) SetupTest() {
	var err error
	suite.app, err = app.NewWithLogger(app.DefaultConfig(), log.NewNopLogger())
	suite.Require().NoError(err)
	suite.runner = scenario.NewRunner(suite.app, log.NewNopLogger())
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (suite *ScenarioTestSuite) run(content string) ([]scenario.Result, error) {
	s, err := scenario.Parse([]byte(content))
	suite.Require().NoError(err)
	return suite.runner.Run(s)
}

func (suite *ScenarioTestSuite) output(results []scenario.Result, step string) interface{} {
	for _, res := range results {
		if res.Step == step {
			return res.Output
		}
	}
	suite.FailNow("no result for step " + step)
	return nil
}

func (suite *ScenarioTestSuite) TestRun() {
	results, err := suite.run(`
accounts:
  - name: alice
    coins: 1000000000untrn,1000uatom
  - name: bob
    coins: 1000000000untrn
steps:
  - name: send
    action: bank/send
    signer: alice
    args:
      to: $bob
      amount: 100uatom
  - name: bob uatom
    action: bank/balance
    args:
      address: $bob
      denom: uatom
  - name: create denom
    action: tokenfactory/create_denom
    signer: alice
    args:
      subdenom: ualice
  - name: mint
    action: tokenfactory/mint
    signer: alice
    args:
      amount: 500factory/$alice/ualice
      to: $bob
  - name: bob mints
    action: tokenfactory/mint
    signer: bob
    args:
      amount: 500factory/$alice/ualice
    expect_error: unauthorized account
  - name: bob ualice
    action: bank/balance
    args:
      address: $bob
      denom: factory/$alice/ualice
  - name: order
    action: dex/place_limit_order
    signer: alice
    args:
      token_in: uatom
      token_out: untrn
      tick: "0"
      amount_in: "10"
  - name: atom price
    action: oracle/get_price
    args:
      pair: ATOM/USDT
`)
	suite.Require().NoError(err)
	suite.Require().Len(results, 8)

	suite.Require().Equal("100uatom", suite.output(results, "bob uatom"))
	denom, ok := suite.output(results, "create denom").(string)
	suite.Require().True(ok)
	suite.Require().Regexp(`^factory/\w+/ualice$`, denom)
	suite.Require().Equal("500"+denom, suite.output(results, "bob ualice"))
	suite.Require().NotEmpty(suite.output(results, "order"))
	suite.Require().Equal("4480000", suite.output(results, "atom price"))

	failed := results[4]
	suite.Require().Equal("bob mints", failed.Step)
	suite.Require().Contains(failed.Error, "unauthorized account")
	suite.Require().Nil(failed.Output)

	for _, res := range results[:1] {
		suite.Require().NotZero(res.GasUsed)
	}
	suite.Require().Equal(suite.app.BlockHeight(), results[len(results)-1].Height)
}

func (suite *ScenarioTestSuite) TestRunGovProposal() {
	results, err := suite.run(`
accounts:
  - name: alice
    coins: 1000000000untrn
  - name: bob
    coins: 1000000000untrn
steps:
  - name: propose fee
    action: gov/update_tokenfactory_params
    signer: alice
    args:
      denom_creation_fee: 1000untrn
      fee_collector: $bob
  - name: voting
    action: gov/proposal
    args:
      id: "1"
  - name: wait
    action: chain/increase_time
    args:
      seconds: "61"
  - name: passed
    action: gov/proposal
    args:
      id: "1"
  - name: create denom
    action: tokenfactory/create_denom
    signer: alice
    args:
      subdenom: ufee
  - name: collected
    action: bank/balance
    args:
      address: $bob
      denom: untrn
`)
	suite.Require().NoError(err)
	suite.Require().EqualValues(1, suite.output(results, "propose fee"))
	suite.Require().Equal("PROPOSAL_STATUS_VOTING_PERIOD", suite.output(results, "voting"))
	suite.Require().Equal("PROPOSAL_STATUS_PASSED", suite.output(results, "passed"))
	suite.Require().Equal("1000001000untrn", suite.output(results, "collected"))
}

func (suite *ScenarioTestSuite) TestRunOraclePrice() {
	results, err := suite.run(`
steps:
  - action: oracle/set_price
    args:
      pair: ATOM/USDT
      price: "5000000"
  - name: price
    action: oracle/get_price
    args:
      pair: ATOM/USDT
`)
	suite.Require().NoError(err)
	suite.Require().Equal("oracle/set_price", results[0].Step)
	suite.Require().Equal("5000000", suite.output(results, "price"))
}

func (suite *ScenarioTestSuite) TestRunStopsAtFirstFailure() {
	height := suite.app.BlockHeight()
	results, err := suite.run(`
accounts:
  - name: alice
    coins: 1000000000untrn
steps:
  - name: bad pair
    action: oracle/get_price
    args:
      pair: ATOMUSDT
  - name: never
    action: chain/increase_time
    args:
      seconds: "10"
`)
	suite.Require().ErrorIs(err, scenario.ErrInvalidArg)
	suite.Require().Contains(err.Error(), "step 0 (bad pair)")
	suite.Require().Len(results, 1)
	suite.Require().Equal("bad pair", results[0].Step)
	suite.Require().NotEmpty(results[0].Error)
	suite.Require().Equal(height, suite.app.BlockHeight())
}

func (suite *ScenarioTestSuite) TestRunExpectedFailureSucceeds() {
	results, err := suite.run(`
steps:
  - name: wait
    action: chain/increase_time
    args:
      seconds: "5"
    expect_error: anything
`)
	suite.Require().ErrorIs(err, scenario.ErrExpectedFailure)
	suite.Require().Len(results, 1)
}

func (suite *ScenarioTestSuite) TestRunWrongFailure() {
	results, err := suite.run(`
steps:
  - name: bad pair
    action: oracle/get_price
    args:
      pair: ATOMUSDT
    expect_error: no price
`)
	suite.Require().ErrorIs(err, scenario.ErrStepFailed)
	suite.Require().Contains(results[0].Error, "invalid argument")
}

func (suite *ScenarioTestSuite) TestRunMissingArg() {
	_, err := suite.run(`
accounts:
  - name: alice
    coins: 1000000000untrn
steps:
  - action: bank/send
    signer: alice
    args:
      amount: 1untrn
`)
	suite.Require().ErrorIs(err, scenario.ErrMissingArg)
}

func (suite *ScenarioTestSuite) TestRunValidatorSigner() {
	results, err := suite.run(`
accounts:
  - name: alice
    coins: 1untrn
steps:
  - action: bank/send
    signer: validator
    args:
      to: $alice
      amount: 10untrn
  - name: alice
    action: bank/balance
    args:
      address: $alice
      denom: untrn
`)
	suite.Require().NoError(err)
	suite.Require().Equal("11untrn", suite.output(results, "alice"))
}
