package app

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	dbm "github.com/tendermint/tm-db"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/libs/log"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/adminmodule"
	adminkeeper "github.com/okx/testtube/x/adminmodule/keeper"
	"github.com/okx/testtube/x/auth"
	"github.com/okx/testtube/x/auth/ante"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	"github.com/okx/testtube/x/bank"
	bankkeeper "github.com/okx/testtube/x/bank/keeper"
	"github.com/okx/testtube/x/contractmanager"
	contractmanagerkeeper "github.com/okx/testtube/x/contractmanager/keeper"
	"github.com/okx/testtube/x/dex"
	dexkeeper "github.com/okx/testtube/x/dex/keeper"
	"github.com/okx/testtube/x/gov"
	govante "github.com/okx/testtube/x/gov/ante"
	govkeeper "github.com/okx/testtube/x/gov/keeper"
	"github.com/okx/testtube/x/marketmap"
	marketmapkeeper "github.com/okx/testtube/x/marketmap/keeper"
	"github.com/okx/testtube/x/oracle"
	oraclekeeper "github.com/okx/testtube/x/oracle/keeper"
	"github.com/okx/testtube/x/staking"
	stakingkeeper "github.com/okx/testtube/x/staking/keeper"
	"github.com/okx/testtube/x/tokenfactory"
	tokenfactorykeeper "github.com/okx/testtube/x/tokenfactory/keeper"
)

const appName = "testtube"

// ValidatorSelfBond is the stake of the genesis validator, in the fee denom.
// The validator account holds ValidatorBalance on top of it for fees.
const (
	ValidatorSelfBond = int64(1000000000)
	ValidatorBalance  = int64(1000000000000)
)

// module account permissions
var maccPerms = map[string][]string{
	auth.FeeCollectorName:   nil,
	staking.BondedPoolName:  nil,
	gov.ModuleName:          {auth.Burner},
	tokenfactory.ModuleName: {auth.Minter, auth.Burner},
	dex.ModuleName:          {auth.Minter, auth.Burner},
	adminmodule.ModuleName:  nil,
}

// moduleAccountNames returns the module accounts created at genesis in a
// stable order, so that account numbers do not change between runs.
func moduleAccountNames() []string {
	names := make([]string, 0, len(maccPerms))
	for name := range maccPerms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TestApp is an in-process chain with the neutron module set. It executes
// one tx per block and serves typed queries, and is the Runner every
// module façade talks to.
type TestApp struct {
	*simulator.BaseApp

	cfg      Config
	registry *stdprometheus.Registry

	AccountKeeper         authkeeper.AccountKeeper
	BankKeeper            bankkeeper.BaseKeeper
	StakingKeeper         stakingkeeper.Keeper
	GovKeeper             govkeeper.Keeper
	TokenFactoryKeeper    tokenfactorykeeper.Keeper
	OracleKeeper          oraclekeeper.Keeper
	MarketMapKeeper       *marketmapkeeper.Keeper
	AdminKeeper           adminkeeper.Keeper
	ContractManagerKeeper contractmanagerkeeper.Keeper
	DexKeeper             dexkeeper.Keeper

	mm        *simulator.Manager
	validator *account.SigningAccount
}

// New starts a chain with DefaultConfig.
func New() (*TestApp, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig starts a chain: it wires every module, runs genesis and
// commits it as block 1.
func NewWithConfig(cfg Config) (*TestApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := log.NewStdoutLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(cfg, logger)
}

// NewWithLogger is NewWithConfig logging to logger.
func NewWithLogger(cfg Config, logger log.Logger) (*TestApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []simulator.Option{simulator.SetBlockInterval(cfg.BlockInterval)}
	var registry *stdprometheus.Registry
	if cfg.Metrics {
		registry = stdprometheus.NewRegistry()
		opts = append(opts, simulator.SetMetrics(simulator.PrometheusMetrics(registry)))
	}
	bApp := simulator.NewBaseApp(appName, logger, dbm.NewMemDB(), opts...)

	app := &TestApp{BaseApp: bApp, cfg: cfg, registry: registry}
	prefix := cfg.AddressPrefix

	app.AccountKeeper = auth.NewAccountKeeper(auth.StoreKey, prefix, maccPerms)
	govAuthority := app.AccountKeeper.GetModuleAddress(gov.ModuleName)
	adminAuthority := app.AccountKeeper.GetModuleAddress(adminmodule.ModuleName)

	app.BankKeeper = bank.NewBaseKeeper(bank.StoreKey, app.AccountKeeper, govAuthority)
	app.StakingKeeper = staking.NewKeeper(staking.StoreKey, app.BankKeeper, prefix+"valoper")
	app.GovKeeper = gov.NewKeeper(gov.StoreKey, app.AccountKeeper, app.BankKeeper, app.StakingKeeper, bApp.MsgServiceRouter())
	app.TokenFactoryKeeper = tokenfactory.NewKeeper(tokenfactory.StoreKey, app.AccountKeeper, app.BankKeeper, govAuthority)
	app.OracleKeeper = oracle.NewKeeper(oracle.StoreKey)
	app.MarketMapKeeper = marketmap.NewKeeper(marketmap.StoreKey, govAuthority).SetHooks(app.OracleKeeper.Hooks())
	app.AdminKeeper = adminmodule.NewKeeper(adminmodule.StoreKey, adminAuthority, bApp.MsgServiceRouter())
	app.ContractManagerKeeper = contractmanager.NewKeeper(contractmanager.StoreKey, govAuthority, adminAuthority)
	app.DexKeeper = dex.NewKeeper(dex.StoreKey, app.BankKeeper, govAuthority)

	app.mm = simulator.NewManager(
		auth.NewAppModule(app.AccountKeeper),
		bank.NewAppModule(app.BankKeeper),
		staking.NewAppModule(app.StakingKeeper),
		gov.NewAppModule(app.GovKeeper),
		tokenfactory.NewAppModule(app.TokenFactoryKeeper),
		oracle.NewAppModule(app.OracleKeeper),
		marketmap.NewAppModule(app.MarketMapKeeper),
		adminmodule.NewAppModule(app.AdminKeeper),
		contractmanager.NewAppModule(app.ContractManagerKeeper),
		dex.NewAppModule(app.DexKeeper),
	)
	bApp.MountModules(app.mm)

	bApp.SetAnteHandler(ante.NewAnteHandler(ante.HandlerOptions{
		AccountKeeper: app.AccountKeeper,
		BankKeeper:    app.BankKeeper,
		Extra: []ante.AnteDecorator{
			govante.NewAnteDecorator(app.GovKeeper, app.StakingKeeper),
		},
	}))

	validator, err := account.GenerateSigningAccount(prefix, cfg.DefaultFeeSetting())
	if err != nil {
		return nil, err
	}
	app.validator = validator

	genesisTime := time.Unix(DefaultGenesisTime, 0)
	if err := bApp.InitChain(cfg.ChainID, genesisTime, app.initGenesis); err != nil {
		return nil, err
	}
	return app, nil
}

// initGenesis funds and bonds the validator and sets the initial state of
// every module.
func (app *TestApp) initGenesis(ctx sdk.Context) error {
	denom := app.cfg.FeeDenom
	govAuthority := app.GovKeeper.GetAuthority()

	for _, name := range moduleAccountNames() {
		app.AccountKeeper.GetModuleAccount(ctx, name)
	}

	if err := app.StakingKeeper.SetParams(ctx, staking.DefaultParams(denom)); err != nil {
		return errors.Wrap(err, "staking params")
	}
	govParams := gov.DefaultParams()
	govParams.VotingPeriod = int64(app.cfg.VotingPeriod / time.Second)
	if govParams.ExpeditedVotingPeriod > govParams.VotingPeriod {
		govParams.ExpeditedVotingPeriod = govParams.VotingPeriod
	}
	if err := app.GovKeeper.SetParams(ctx, govParams); err != nil {
		return errors.Wrap(err, "gov params")
	}

	app.ensureDenomMetadata(ctx, sdk.NewCoins(sdk.NewCoin(denom, 1)))
	valAddr := app.validator.Address()
	funds := sdk.NewCoins(sdk.NewCoin(denom, ValidatorSelfBond+ValidatorBalance))
	if err := app.BankKeeper.InitGenesisBalance(ctx, valAddr, funds); err != nil {
		return errors.Wrap(err, "fund validator")
	}
	if _, err := app.StakingKeeper.CreateValidator(ctx, valAddr, app.validator.PublicKey(),
		sdk.NewCoin(denom, ValidatorSelfBond), staking.Description{Moniker: "validator"}); err != nil {
		return errors.Wrap(err, "create validator")
	}

	if err := app.OracleKeeper.InitGenesis(ctx, oracle.DefaultGenesisState()); err != nil {
		return errors.Wrap(err, "oracle genesis")
	}
	if err := app.MarketMapKeeper.SetParams(ctx, marketmap.DefaultParams([]string{valAddr, govAuthority}, govAuthority)); err != nil {
		return errors.Wrap(err, "marketmap params")
	}
	if err := app.AdminKeeper.InitGenesis(ctx, []string{valAddr}); err != nil {
		return errors.Wrap(err, "adminmodule genesis")
	}
	return nil
}

// ensureDenomMetadata registers bank metadata for every denom of coins
// that has none yet.
func (app *TestApp) ensureDenomMetadata(ctx sdk.Context, coins sdk.Coins) {
	for _, c := range coins {
		if _, found := app.BankKeeper.GetDenomMetaData(ctx, c.Denom); found {
			continue
		}
		app.BankKeeper.SetDenomMetaData(ctx, bank.Metadata{
			Description: c.Denom,
			DenomUnits:  []bank.DenomUnit{{Denom: c.Denom, Exponent: 0}},
			Base:        c.Denom,
			Display:     c.Denom,
			Name:        c.Denom,
			Symbol:      c.Denom,
		})
	}
}

// Config returns the configuration the chain was started with.
func (app *TestApp) Config() Config { return app.cfg }

// MetricsRegistry returns the prometheus registry of the simulator, or nil
// when metrics are disabled.
func (app *TestApp) MetricsRegistry() *stdprometheus.Registry { return app.registry }
