package types

import (
	"fmt"
	"math/big"
	"regexp"
	"sort"
	"strings"

	sdkerrors "github.com/okx/testtube/types/errors"
)

// DefaultBondDenom is the staking and fee denom of a default chain.
const DefaultBondDenom = "untrn"

var (
	reDnm     = `[a-zA-Z][a-zA-Z0-9/:._-]{2,127}`
	reAmt     = `[[:digit:]]+`
	reDecAmt  = `[[:digit:]]+(?:\.[[:digit:]]+)?|\.[[:digit:]]+`
	reDenom   = regexp.MustCompile(fmt.Sprintf(`^%s$`, reDnm))
	reCoin    = regexp.MustCompile(fmt.Sprintf(`^(%s)[[:space:]]*(%s)$`, reAmt, reDnm))
	reDecCoin = regexp.MustCompile(fmt.Sprintf(`^(%s)[[:space:]]*(%s)$`, reDecAmt, reDnm))
)

// ValidateDenom checks a denomination against the accepted grammar.
func ValidateDenom(denom string) error {
	if !reDenom.MatchString(denom) {
		return fmt.Errorf("invalid denom: %s", denom)
	}
	return nil
}

// Coin is an amount of one denomination. Amount is a base-10 integer
// string of arbitrary size.
type Coin struct {
	Denom  string `json:"denom" yaml:"denom"`
	Amount string `json:"amount" yaml:"amount"`
}

// NewCoin returns a coin of amount units of denom.
func NewCoin(denom string, amount int64) Coin {
	return NewCoinFromInt(denom, big.NewInt(amount))
}

// NewCoinFromInt returns a coin holding a copy of amount.
func NewCoinFromInt(denom string, amount *big.Int) Coin {
	return Coin{Denom: denom, Amount: amount.String()}
}

// ParseCoin parses a coin in the "100untrn" notation.
func ParseCoin(s string) (Coin, error) {
	matches := reCoin.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Coin{}, sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid coin expression: %s", s)
	}
	coin := Coin{Denom: matches[2], Amount: matches[1]}
	amt, _ := new(big.Int).SetString(coin.Amount, 10)
	coin.Amount = amt.String()
	return coin, nil
}

// AmountOf returns the amount as an integer. A malformed amount is zero;
// Validate reports it.
func (coin Coin) AmountOf() *big.Int {
	amt, ok := new(big.Int).SetString(coin.Amount, 10)
	if !ok {
		return new(big.Int)
	}
	return amt
}

// Validate checks the denom and that the amount is a non-negative integer.
func (coin Coin) Validate() error {
	if err := ValidateDenom(coin.Denom); err != nil {
		return err
	}
	amt, ok := new(big.Int).SetString(coin.Amount, 10)
	if !ok {
		return fmt.Errorf("invalid amount %q for %s", coin.Amount, coin.Denom)
	}
	if amt.Sign() < 0 {
		return fmt.Errorf("negative coin amount: %s", coin.Amount)
	}
	return nil
}

func (coin Coin) IsZero() bool { return coin.AmountOf().Sign() == 0 }

func (coin Coin) IsPositive() bool { return coin.AmountOf().Sign() > 0 }

// IsGTE reports whether coin holds at least other. Denoms must match.
func (coin Coin) IsGTE(other Coin) bool {
	if coin.Denom != other.Denom {
		panic(fmt.Sprintf("invalid coin denominations; %s, %s", coin.Denom, other.Denom))
	}
	return coin.AmountOf().Cmp(other.AmountOf()) >= 0
}

func (coin Coin) String() string {
	return fmt.Sprintf("%s%s", coin.Amount, coin.Denom)
}

// Coins is a set of coins sorted by denom, without duplicates or zero
// amounts.
type Coins []Coin

// NewCoins sorts, merges and drops zero coins.
func NewCoins(coins ...Coin) Coins {
	return Coins{}.Add(coins...)
}

// ParseCoins parses a comma separated list such as "10untrn,5uatom".
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coins{}, nil
	}
	var coins []Coin
	for _, part := range strings.Split(s, ",") {
		coin, err := ParseCoin(part)
		if err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}
	return NewCoins(coins...), nil
}

// AmountOf returns the amount of denom held, zero when absent.
func (coins Coins) AmountOf(denom string) *big.Int {
	for _, c := range coins {
		if c.Denom == denom {
			return c.AmountOf()
		}
	}
	return new(big.Int)
}

// Add returns the sum of coins and others in canonical form.
func (coins Coins) Add(others ...Coin) Coins {
	sums := make(map[string]*big.Int)
	for _, c := range append(append([]Coin{}, coins...), others...) {
		if _, ok := sums[c.Denom]; !ok {
			sums[c.Denom] = new(big.Int)
		}
		sums[c.Denom].Add(sums[c.Denom], c.AmountOf())
	}
	return fromAmounts(sums)
}

// SafeSub subtracts others from coins. The second return value is true
// when any resulting amount would be negative.
func (coins Coins) SafeSub(others Coins) (Coins, bool) {
	diffs := make(map[string]*big.Int)
	for _, c := range coins {
		diffs[c.Denom] = c.AmountOf()
	}
	for _, c := range others {
		if _, ok := diffs[c.Denom]; !ok {
			diffs[c.Denom] = new(big.Int)
		}
		diffs[c.Denom].Sub(diffs[c.Denom], c.AmountOf())
		if diffs[c.Denom].Sign() < 0 {
			return nil, true
		}
	}
	return fromAmounts(diffs), false
}

// IsAllGTE reports whether coins holds at least every amount in others.
func (coins Coins) IsAllGTE(others Coins) bool {
	_, negative := coins.SafeSub(others)
	return !negative
}

func (coins Coins) IsZero() bool {
	for _, c := range coins {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Validate checks every coin is valid, positive, and that the set is
// sorted without duplicates.
func (coins Coins) Validate() error {
	for i, c := range coins {
		if err := c.Validate(); err != nil {
			return err
		}
		if !c.IsPositive() {
			return fmt.Errorf("coin %s amount is not positive", c)
		}
		if i > 0 && coins[i-1].Denom >= c.Denom {
			return fmt.Errorf("coins are not sorted or contain duplicates: %s", coins)
		}
	}
	return nil
}

func (coins Coins) String() string {
	if len(coins) == 0 {
		return ""
	}
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func fromAmounts(amounts map[string]*big.Int) Coins {
	res := Coins{}
	for denom, amt := range amounts {
		if amt.Sign() == 0 {
			continue
		}
		res = append(res, NewCoinFromInt(denom, amt))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Denom < res[j].Denom })
	return res
}

// DecCoin is a decimal amount of one denomination, used for gas prices.
type DecCoin struct {
	Denom  string `json:"denom" yaml:"denom"`
	Amount string `json:"amount" yaml:"amount"`
}

// ParseDecCoin parses a decimal coin such as "0.0025untrn".
func ParseDecCoin(s string) (DecCoin, error) {
	matches := reDecCoin.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return DecCoin{}, sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid decimal coin expression: %s", s)
	}
	return DecCoin{Denom: matches[2], Amount: matches[1]}, nil
}

// MustParseDecCoin panics on malformed input.
func MustParseDecCoin(s string) DecCoin {
	c, err := ParseDecCoin(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rat returns the amount as a rational number.
func (coin DecCoin) Rat() *big.Rat {
	r, ok := new(big.Rat).SetString(coin.Amount)
	if !ok {
		return new(big.Rat)
	}
	return r
}

// MulCeil returns ceil(amount * n) as a Coin.
func (coin DecCoin) MulCeil(n uint64) Coin {
	prod := new(big.Rat).Mul(coin.Rat(), new(big.Rat).SetUint64(n))
	q, r := new(big.Int).QuoRem(prod.Num(), prod.Denom(), new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return NewCoinFromInt(coin.Denom, q)
}

func (coin DecCoin) String() string {
	return fmt.Sprintf("%s%s", coin.Amount, coin.Denom)
}
