package types

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// MaxTickExp bounds tick indexes on both sides.
const MaxTickExp int64 = 559680

// LimitOrderType selects how an order that cannot be filled right away is
// handled.
type LimitOrderType int32

const (
	GOOD_TIL_CANCELLED LimitOrderType = iota
	FILL_OR_KILL
	IMMEDIATE_OR_CANCEL
	JUST_IN_TIME
	GOOD_TIL_TIME
)

var limitOrderTypeNames = map[LimitOrderType]string{
	GOOD_TIL_CANCELLED:  "GOOD_TIL_CANCELLED",
	FILL_OR_KILL:        "FILL_OR_KILL",
	IMMEDIATE_OR_CANCEL: "IMMEDIATE_OR_CANCEL",
	JUST_IN_TIME:        "JUST_IN_TIME",
	GOOD_TIL_TIME:       "GOOD_TIL_TIME",
}

func (t LimitOrderType) String() string {
	if name, ok := limitOrderTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseLimitOrderType returns the order type named s.
func ParseLimitOrderType(s string) (LimitOrderType, bool) {
	for t, name := range limitOrderTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// IsGoodTil reports whether the order rests until a fixed time.
func (t LimitOrderType) IsGoodTil() bool { return t == GOOD_TIL_TIME }

// IsJIT reports whether the order rests only for the current block.
func (t LimitOrderType) IsJIT() bool { return t == JUST_IN_TIME }

// IsTakerOnly reports whether the order never rests on the book.
func (t LimitOrderType) IsTakerOnly() bool { return t == FILL_OR_KILL || t == IMMEDIATE_OR_CANCEL }

func IsTickOutOfRange(tick int64) bool {
	return tick > MaxTickExp || tick < -MaxTickExp
}

// PriceToTickIndex returns the tick whose price 1.0001^-tick is closest to
// price.
func PriceToTickIndex(price *big.Rat) (int64, error) {
	if price.Sign() <= 0 {
		return 0, fmt.Errorf("price must be positive, got %s", price.FloatString(18))
	}
	f, _ := price.Float64()
	tick := -int64(math.Round(math.Log(f) / math.Log(1.0001)))
	if IsTickOutOfRange(tick) {
		return 0, ErrTickOutsideRange
	}
	return tick, nil
}

// ParseAmount parses a non-negative integer amount.
func ParseAmount(amount string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(amount, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// PoolDenom returns the share denom of pool id.
func PoolDenom(id uint64) string {
	return PoolDenomPrefix + strconv.FormatUint(id, 10)
}

type Params struct {
	FeeTiers              []uint64 `json:"fee_tiers"`
	Paused                bool     `json:"paused"`
	MaxJitsPerBlock       uint64   `json:"max_jits_per_block"`
	GoodTilPurgeAllowance uint64   `json:"good_til_purge_allowance"`
}

func DefaultParams() Params {
	return Params{
		FeeTiers:              []uint64{0, 1, 2, 3, 4, 5, 10, 20, 50, 100, 150, 200},
		MaxJitsPerBlock:       25,
		GoodTilPurgeAllowance: 540000,
	}
}

func (p Params) Validate() error {
	seen := make(map[uint64]struct{}, len(p.FeeTiers))
	for _, fee := range p.FeeTiers {
		if _, ok := seen[fee]; ok {
			return fmt.Errorf("duplicate fee tier %d", fee)
		}
		seen[fee] = struct{}{}
	}
	return nil
}

func (p Params) HasFeeTier(fee uint64) bool {
	for _, tier := range p.FeeTiers {
		if tier == fee {
			return true
		}
	}
	return false
}

// Pool holds the liquidity deposited at one center tick and fee. Ticks
// are normalized to token0.
type Pool struct {
	Id              uint64 `json:"id"`
	PairId          PairID `json:"pair_id"`
	CenterTickIndex int64  `json:"center_tick_index"`
	Fee             uint64 `json:"fee"`
	Reserves0       string `json:"reserves0"`
	Reserves1       string `json:"reserves1"`
	TotalShares     string `json:"total_shares"`
}

// LowerTick0 is the tick token0 liquidity rests at.
func (p Pool) LowerTick0() int64 { return p.CenterTickIndex - int64(p.Fee) }

// UpperTick1 is the tick token1 liquidity rests at.
func (p Pool) UpperTick1() int64 { return p.CenterTickIndex + int64(p.Fee) }

type PoolReservesKey struct {
	TradePairId           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker int64       `json:"tick_index_taker_to_maker"`
	Fee                   uint64      `json:"fee"`
}

// PoolReserves is one side of a pool.
type PoolReserves struct {
	Key                PoolReservesKey `json:"key"`
	ReservesMakerDenom string          `json:"reserves_maker_denom"`
}

// Reserves returns the side of p where maker is provided.
func (p Pool) Reserves(maker string) PoolReserves {
	tradePairID := p.PairId.MustTradePairIDFromMaker(maker)
	if maker == p.PairId.Token0 {
		return PoolReserves{
			Key: PoolReservesKey{
				TradePairId:           tradePairID,
				TickIndexTakerToMaker: tradePairID.TickIndexTakerToMaker(p.LowerTick0()),
				Fee:                   p.Fee,
			},
			ReservesMakerDenom: p.Reserves0,
		}
	}
	return PoolReserves{
		Key: PoolReservesKey{
			TradePairId:           tradePairID,
			TickIndexTakerToMaker: tradePairID.TickIndexTakerToMaker(p.UpperTick1()),
			Fee:                   p.Fee,
		},
		ReservesMakerDenom: p.Reserves1,
	}
}

type LimitOrderTrancheKey struct {
	TradePairId           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker int64       `json:"tick_index_taker_to_maker"`
	TrancheKey            string      `json:"tranche_key"`
}

// LimitOrderTranche groups resting orders that share a tick. ExpirationTime
// is unix seconds, zero when the tranche does not expire.
type LimitOrderTranche struct {
	Key                LimitOrderTrancheKey `json:"key"`
	ReservesMakerDenom string               `json:"reserves_maker_denom"`
	ReservesTakerDenom string               `json:"reserves_taker_denom"`
	TotalMakerDenom    string               `json:"total_maker_denom"`
	TotalTakerDenom    string               `json:"total_taker_denom"`
	ExpirationTime     int64                `json:"expiration_time"`
}

func (t LimitOrderTranche) HasExpiration() bool { return t.ExpirationTime != 0 }

// LimitOrderTrancheUser is the share of one address in a tranche.
type LimitOrderTrancheUser struct {
	TradePairId           TradePairID    `json:"trade_pair_id"`
	TickIndexTakerToMaker int64          `json:"tick_index_taker_to_maker"`
	TrancheKey            string         `json:"tranche_key"`
	Address               string         `json:"address"`
	SharesOwned           string         `json:"shares_owned"`
	SharesWithdrawn       string         `json:"shares_withdrawn"`
	SharesCancelled       string         `json:"shares_cancelled"`
	OrderType             LimitOrderType `json:"order_type"`
}

// TickLiquidity is either a pool side or a limit order tranche.
type TickLiquidity struct {
	PoolReserves      *PoolReserves      `json:"pool_reserves,omitempty"`
	LimitOrderTranche *LimitOrderTranche `json:"limit_order_tranche,omitempty"`
}

func (tl TickLiquidity) TickIndex() int64 {
	if tl.PoolReserves != nil {
		return tl.PoolReserves.Key.TickIndexTakerToMaker
	}
	return tl.LimitOrderTranche.Key.TickIndexTakerToMaker
}

// DepositRecord is the position of one address in one pool.
type DepositRecord struct {
	PairId          PairID `json:"pair_id"`
	SharesOwned     string `json:"shares_owned"`
	CenterTickIndex int64  `json:"center_tick_index"`
	LowerTickIndex  int64  `json:"lower_tick_index"`
	UpperTickIndex  int64  `json:"upper_tick_index"`
	Fee             uint64 `json:"fee"`
	TotalReserves0  string `json:"total_reserves0"`
	TotalReserves1  string `json:"total_reserves1"`
	Pool            *Pool  `json:"pool,omitempty"`
}
