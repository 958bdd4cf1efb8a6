package simulator

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"

	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/libs/store"
	"github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// DefaultBlockInterval is the time between two consecutive blocks.
const DefaultBlockInterval = 3 * time.Second

// AnteHandler authenticates a tx and charges its fee before any message
// runs. Its writes are kept even when a message fails afterwards.
type AnteHandler func(ctx types.Context, tx types.Tx, msgs []types.Msg, simulate bool) error

// ResponseFinalizeBlock is the outcome of one block.
type ResponseFinalizeBlock struct {
	Height    int64
	Time      time.Time
	TxResults []types.TxResult
	Events    types.Events
}

// BaseApp is a single node chain without consensus: every call to
// FinalizeBlock produces and commits one block. All methods are safe for
// concurrent use; calls are serialized.
type BaseApp struct {
	mtx sync.Mutex

	name        string
	logger      log.Logger
	db          *store.DBStore
	msgRouter   *MsgServiceRouter
	queryRouter *QueryRouter
	params      *ParamsRegistry
	manager     *Manager
	anteHandler AnteHandler
	metrics     *Metrics

	blockInterval time.Duration
	header        types.Header
	initialized   bool
}

// Option configures a BaseApp.
type Option func(*BaseApp)

// SetMetrics replaces the default no-op metrics.
func SetMetrics(m *Metrics) Option {
	return func(app *BaseApp) { app.metrics = m }
}

// SetBlockInterval sets the time between two consecutive blocks.
func SetBlockInterval(d time.Duration) Option {
	return func(app *BaseApp) { app.blockInterval = d }
}

// NewBaseApp returns a simulator over db.
func NewBaseApp(name string, logger log.Logger, db dbm.DB, opts ...Option) *BaseApp {
	app := &BaseApp{
		name:          name,
		logger:        logger.With("module", "simulator"),
		db:            store.NewDBStore(db),
		msgRouter:     NewMsgServiceRouter(),
		queryRouter:   NewQueryRouter(),
		params:        NewParamsRegistry(),
		manager:       NewManager(),
		metrics:       NopMetrics(),
		blockInterval: DefaultBlockInterval,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func (app *BaseApp) Name() string                        { return app.name }
func (app *BaseApp) Logger() log.Logger                  { return app.logger }
func (app *BaseApp) MsgServiceRouter() *MsgServiceRouter { return app.msgRouter }
func (app *BaseApp) QueryRouter() *QueryRouter           { return app.queryRouter }
func (app *BaseApp) ParamsRegistry() *ParamsRegistry     { return app.params }

// SetAnteHandler installs the ante handler.
func (app *BaseApp) SetAnteHandler(h AnteHandler) { app.anteHandler = h }

// MountModules registers the services of every module and runs their
// block hooks from then on.
func (app *BaseApp) MountModules(m *Manager) {
	app.manager = m
	m.RegisterServices(Configurator{
		MsgRouter:   app.msgRouter,
		QueryRouter: app.queryRouter,
		Params:      app.params,
	})
}

// InitChain runs genesis and commits it as block 1.
func (app *BaseApp) InitChain(chainID string, genesisTime time.Time, initGenesis func(ctx types.Context) error) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.initialized {
		return errors.New("chain already initialized")
	}
	header := types.Header{ChainID: chainID, Height: 1, Time: genesisTime.UTC()}
	cache := store.NewCacheKVStore(app.db)
	ctx := types.NewContext(cache, header, app.logger)
	if err := initGenesis(ctx); err != nil {
		return errors.Wrap(err, "init genesis")
	}
	cache.Write()

	app.header = header
	app.initialized = true
	app.metrics.Height.Set(float64(header.Height))
	app.logger.Info("initialized chain", "chain_id", chainID, "genesis_time", header.Time)
	return nil
}

// LastHeader returns the header of the last committed block.
func (app *BaseApp) LastHeader() types.Header {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	return app.header
}

func (app *BaseApp) nextHeader(d time.Duration) types.Header {
	return types.Header{
		ChainID: app.header.ChainID,
		Height:  app.header.Height + 1,
		Time:    app.header.Time.Add(d),
	}
}

// FinalizeBlock executes txs in order in a new block one block interval
// after the last one, and commits it.
func (app *BaseApp) FinalizeBlock(txs [][]byte) (*ResponseFinalizeBlock, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	return app.finalizeBlock(app.blockInterval, txs)
}

// AdvanceTime commits an empty block d after the last one.
func (app *BaseApp) AdvanceTime(d time.Duration) (*ResponseFinalizeBlock, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	return app.finalizeBlock(d, nil)
}

func (app *BaseApp) finalizeBlock(d time.Duration, txs [][]byte) (*ResponseFinalizeBlock, error) {
	if !app.initialized {
		return nil, errors.New("chain is not initialized")
	}
	if d < 0 {
		return nil, errors.Errorf("cannot move block time backwards by %s", d)
	}

	header := app.nextHeader(d)
	cache := store.NewCacheKVStore(app.db)
	ctx := types.NewContext(cache, header, app.logger)

	app.manager.BeginBlock(ctx)

	res := &ResponseFinalizeBlock{Height: header.Height, Time: header.Time}
	for _, txBytes := range txs {
		txRes := app.runTx(runTxModeDeliver, ctx.WithEventManager(types.NewEventManager()), txBytes)
		res.TxResults = append(res.TxResults, txRes)
		app.metrics.Txs.With("code", strconv.FormatUint(uint64(txRes.Code), 10)).Add(1)
		if !txRes.IsOK() {
			app.logger.Debug("tx failed", "height", header.Height, "code", txRes.Code, "log", txRes.Log)
		}
	}

	app.manager.EndBlock(ctx)
	res.Events = ctx.EventManager().Events()

	cache.Write()
	app.header = header
	app.metrics.Blocks.Add(1)
	app.metrics.Height.Set(float64(header.Height))
	app.logger.Debug("committed block", "height", header.Height, "time", header.Time, "txs", len(txs))
	return res, nil
}

// Simulate runs txBytes against the next block without committing
// anything. Signatures are not verified.
func (app *BaseApp) Simulate(txBytes []byte) (types.GasInfo, *types.TxResult, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if !app.initialized {
		return types.GasInfo{}, nil, errors.New("chain is not initialized")
	}
	ctx := types.NewContext(store.NewCacheKVStore(app.db), app.nextHeader(app.blockInterval), app.logger)
	res := app.runTx(runTxModeSimulate, ctx, txBytes)
	if !res.IsOK() {
		return res.GasInfo(), nil, errors.New(res.Log)
	}
	return res.GasInfo(), &res, nil
}

// Query answers path against the last committed state. Unknown paths
// fail with ErrUnknownRoute.
func (app *BaseApp) Query(path string, req []byte) ([]byte, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	querier, ok := app.queryRouter.Route(path)
	if !ok {
		app.metrics.Queries.With("route", path, "status", "not_found").Add(1)
		return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRoute, path)
	}
	ctx := types.NewContext(store.NewCacheKVStore(app.db), app.header, app.logger)
	res, err := querier(ctx, req)
	if err != nil {
		app.metrics.Queries.With("route", path, "status", "error").Add(1)
		return nil, err
	}
	app.metrics.Queries.With("route", path, "status", "ok").Add(1)
	return res, nil
}

// UpdateState runs fn on the committed state outside of any block and
// commits its writes when it succeeds.
func (app *BaseApp) UpdateState(fn func(ctx types.Context) error) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	cache := store.NewCacheKVStore(app.db)
	if err := fn(types.NewContext(cache, app.header, app.logger)); err != nil {
		return err
	}
	cache.Write()
	return nil
}

// View runs fn on a throwaway branch of the committed state.
func (app *BaseApp) View(fn func(ctx types.Context) error) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	return fn(types.NewContext(store.NewCacheKVStore(app.db), app.header, app.logger))
}

// GetParamSet returns the encoded params of subspace.
func (app *BaseApp) GetParamSet(subspace, typeURL string) ([]byte, error) {
	var bz []byte
	err := app.View(func(ctx types.Context) (err error) {
		bz, err = app.params.Get(ctx, subspace, typeURL)
		return err
	})
	return bz, err
}

// SetParamSet overrides the params of subspace.
func (app *BaseApp) SetParamSet(subspace string, params codec.Any) error {
	return app.UpdateState(func(ctx types.Context) error {
		return app.params.Set(ctx, subspace, params)
	})
}

// Routes lists the registered message type URLs and query paths.
func (app *BaseApp) Routes() (msgs []string, queries []string) {
	return app.msgRouter.Routes(), app.queryRouter.Routes()
}
