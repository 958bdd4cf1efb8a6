package simulator

import (
	"strings"
	"testing"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := stdprometheus.NewRegistry()
	m := PrometheusMetrics(reg)

	m.Blocks.Add(2)
	m.Txs.With("code", "0").Add(1)
	m.Txs.With("code", "5").Add(1)
	m.Height.Set(3)

	expected := `
# HELP testtube_simulator_blocks_total Number of finalized blocks.
# TYPE testtube_simulator_blocks_total counter
testtube_simulator_blocks_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "testtube_simulator_blocks_total"))

	count, err := testutil.GatherAndCount(reg, "testtube_simulator_txs_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNopMetrics(t *testing.T) {
	m := NopMetrics()
	require.NotPanics(t, func() {
		m.Blocks.Add(1)
		m.Queries.With("route", "/x", "status", "ok").Add(1)
		m.Height.Set(1)
	})
}
