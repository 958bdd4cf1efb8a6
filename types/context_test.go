package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/libs/store"
	"github.com/okx/testtube/types"
)

const testKey = types.StoreKey("test")

func TestCacheContext(t *testing.T) {
	ctx := types.NewContext(store.NewCacheKVStore(store.NewMemDBStore()), types.Header{
		ChainID: "neutron-666",
		Height:  3,
		Time:    time.Unix(1700000000, 0).UTC(),
	}, log.NewNopLogger())

	cc, write := ctx.CacheContext()
	cc.KVStore(testKey).Set([]byte("k"), []byte("v"))
	cc.EventManager().EmitEvent(types.NewEvent("test", types.NewAttribute("k", "v")))

	require.Nil(t, ctx.KVStore(testKey).Get([]byte("k")))
	require.Empty(t, ctx.EventManager().Events())

	write()
	require.Equal(t, []byte("v"), ctx.KVStore(testKey).Get([]byte("k")))
	require.Len(t, ctx.EventManager().Events(), 1)
	require.Equal(t, int64(3), cc.BlockHeight())
	require.Equal(t, "neutron-666", cc.ChainID())
}

func TestContextChargesGas(t *testing.T) {
	meter := store.NewGasMeter(1000000)
	ctx := types.NewContext(store.NewCacheKVStore(store.NewMemDBStore()), types.Header{}, log.NewNopLogger()).
		WithGasMeter(meter)
	ctx.KVStore(testKey).Set([]byte("k"), []byte("v"))
	require.Positive(t, meter.GasConsumed())
}
