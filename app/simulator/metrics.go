package simulator

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsNamespace prefixes every simulator metric.
	MetricsNamespace = "testtube"
	// MetricsSubsystem is the subsystem of simulator metrics.
	MetricsSubsystem = "simulator"
)

// Metrics contains metrics exposed by the simulator.
type Metrics struct {
	// Blocks finalized, including empty time-advancing blocks.
	Blocks metrics.Counter
	// Txs delivered, by result code.
	Txs metrics.Counter
	// Queries answered, by route and status.
	Queries metrics.Counter
	// Height of the last committed block.
	Height metrics.Gauge
}

// PrometheusMetrics returns metrics backed by prometheus collectors
// registered on reg. Each simulator gets its own registry so that several
// can live in one process.
func PrometheusMetrics(reg stdprometheus.Registerer) *Metrics {
	blocks := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "blocks_total",
		Help:      "Number of finalized blocks.",
	}, nil)
	txs := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "txs_total",
		Help:      "Number of delivered txs by result code.",
	}, []string{"code"})
	queries := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "queries_total",
		Help:      "Number of queries by route and status.",
	}, []string{"route", "status"})
	height := stdprometheus.NewGaugeVec(stdprometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "block_height",
		Help:      "Height of the last committed block.",
	}, nil)
	reg.MustRegister(blocks, txs, queries, height)

	return &Metrics{
		Blocks:  kitprometheus.NewCounter(blocks),
		Txs:     kitprometheus.NewCounter(txs),
		Queries: kitprometheus.NewCounter(queries),
		Height:  kitprometheus.NewGauge(height),
	}
}

// NopMetrics returns no-op metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Blocks:  discard.NewCounter(),
		Txs:     discard.NewCounter(),
		Queries: discard.NewCounter(),
		Height:  discard.NewGauge(),
	}
}
