package types

import (
	"time"

	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/libs/store"
)

// StoreKey names the region of state owned by one module.
type StoreKey string

// Prefix is the key prefix of the region.
func (k StoreKey) Prefix() []byte { return []byte(string(k) + "/") }

// Header is the block header visible to handlers.
type Header struct {
	ChainID string
	Height  int64
	Time    time.Time
}

// Context is the immutable execution environment handed to handlers.
// With* methods return modified copies.
type Context struct {
	ms           store.KVStore
	header       Header
	gasMeter     store.GasMeter
	eventManager *EventManager
	logger       log.Logger
	simulate     bool
}

// NewContext returns a context over ms with an infinite gas meter.
func NewContext(ms store.KVStore, header Header, logger log.Logger) Context {
	return Context{
		ms:           ms,
		header:       header,
		gasMeter:     store.NewInfiniteGasMeter(),
		eventManager: NewEventManager(),
		logger:       logger,
	}
}

func (c Context) MultiStore() store.KVStore   { return c.ms }
func (c Context) BlockHeader() Header         { return c.header }
func (c Context) BlockHeight() int64          { return c.header.Height }
func (c Context) BlockTime() time.Time        { return c.header.Time }
func (c Context) ChainID() string             { return c.header.ChainID }
func (c Context) GasMeter() store.GasMeter    { return c.gasMeter }
func (c Context) EventManager() *EventManager { return c.eventManager }
func (c Context) IsSimulate() bool            { return c.simulate }
func (c Context) Logger() log.Logger          { return c.logger }

func (c Context) WithMultiStore(ms store.KVStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockHeader(header Header) Context {
	c.header = header
	return c
}

func (c Context) WithGasMeter(meter store.GasMeter) Context {
	c.gasMeter = meter
	return c
}

func (c Context) WithEventManager(em *EventManager) Context {
	c.eventManager = em
	return c
}

func (c Context) WithSimulate(simulate bool) Context {
	c.simulate = simulate
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

// KVStore returns the gas metered region of state owned by key.
func (c Context) KVStore(key StoreKey) store.KVStore {
	return store.NewPrefixStore(store.NewGasKVStore(c.gasMeter, store.KVGasConfig(), c.ms), key.Prefix())
}

// CacheContext branches the state and the event manager. writeCache
// commits the branch and forwards its events to c.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := store.NewCacheKVStore(c.ms)
	cc = c.WithMultiStore(cms).WithEventManager(NewEventManager())
	writeCache = func() {
		c.EventManager().EmitEvents(cc.EventManager().Events())
		cms.Write()
	}
	return cc, writeCache
}
