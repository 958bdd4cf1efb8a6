// Package testutil holds helpers shared by keeper tests.
package testutil

import (
	"time"

	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/libs/store"
	sdk "github.com/okx/testtube/types"
)

// DefaultChainID is the chain id of contexts built by DefaultContext.
const DefaultChainID = "neutron-666"

// DefaultContext returns a context over a fresh in-memory store at
// height 1 with an infinite gas meter.
func DefaultContext() sdk.Context {
	return sdk.NewContext(store.NewCacheKVStore(store.NewMemDBStore()), sdk.Header{
		ChainID: DefaultChainID,
		Height:  1,
		Time:    time.Unix(1700000000, 0).UTC(),
	}, log.NewNopLogger())
}

// Addr returns a deterministic address with prefix derived from seed.
func Addr(prefix, seed string) string {
	return sdk.ModuleAddress(prefix, "testutil/"+seed)
}
