package store

import (
	"fmt"
	"math"
)

// Gas is measured in units of work.
type Gas = uint64

// ErrorOutOfGas is the panic value raised when a meter exceeds its limit.
// The tx pipeline recovers it into an out-of-gas error.
type ErrorOutOfGas struct {
	Descriptor string
}

// ErrorGasOverflow is raised when gas consumption overflows a uint64.
type ErrorGasOverflow struct {
	Descriptor string
}

// GasMeter tracks gas consumption against a limit.
type GasMeter interface {
	GasConsumed() Gas
	Limit() Gas
	ConsumeGas(amount Gas, descriptor string)
	IsOutOfGas() bool
	String() string
}

type basicGasMeter struct {
	limit    Gas
	consumed Gas
}

// NewGasMeter returns a meter that panics with ErrorOutOfGas once limit
// is crossed.
func NewGasMeter(limit Gas) GasMeter {
	return &basicGasMeter{limit: limit}
}

func (g *basicGasMeter) GasConsumed() Gas { return g.consumed }

func (g *basicGasMeter) Limit() Gas { return g.limit }

func (g *basicGasMeter) ConsumeGas(amount Gas, descriptor string) {
	var overflow bool
	g.consumed, overflow = addUint64Overflow(g.consumed, amount)
	if overflow {
		panic(ErrorGasOverflow{descriptor})
	}
	if g.consumed > g.limit {
		panic(ErrorOutOfGas{descriptor})
	}
}

func (g *basicGasMeter) IsOutOfGas() bool { return g.consumed >= g.limit }

func (g *basicGasMeter) String() string {
	return fmt.Sprintf("BasicGasMeter:\n  limit: %d\n  consumed: %d", g.limit, g.consumed)
}

type infiniteGasMeter struct {
	consumed Gas
}

// NewInfiniteGasMeter returns a meter without a limit. Simulation and
// block hooks run under it.
func NewInfiniteGasMeter() GasMeter {
	return &infiniteGasMeter{}
}

func (g *infiniteGasMeter) GasConsumed() Gas { return g.consumed }

func (g *infiniteGasMeter) Limit() Gas { return 0 }

func (g *infiniteGasMeter) ConsumeGas(amount Gas, descriptor string) {
	var overflow bool
	g.consumed, overflow = addUint64Overflow(g.consumed, amount)
	if overflow {
		panic(ErrorGasOverflow{descriptor})
	}
}

func (g *infiniteGasMeter) IsOutOfGas() bool { return false }

func (g *infiniteGasMeter) String() string {
	return fmt.Sprintf("InfiniteGasMeter:\n  consumed: %d", g.consumed)
}

func addUint64Overflow(a, b uint64) (uint64, bool) {
	if math.MaxUint64-a < b {
		return 0, true
	}
	return a + b, false
}

// GasConfig prices KVStore operations.
type GasConfig struct {
	HasCost          Gas
	DeleteCost       Gas
	ReadCostFlat     Gas
	ReadCostPerByte  Gas
	WriteCostFlat    Gas
	WriteCostPerByte Gas
	IterNextCostFlat Gas
}

// KVGasConfig returns the default gas prices for KVStore access.
func KVGasConfig() GasConfig {
	return GasConfig{
		HasCost:          1000,
		DeleteCost:       1000,
		ReadCostFlat:     1000,
		ReadCostPerByte:  3,
		WriteCostFlat:    2000,
		WriteCostPerByte: 30,
		IterNextCostFlat: 30,
	}
}
