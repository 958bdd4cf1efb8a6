package types

import (
	"fmt"
	"math/big"
	"strings"
)

// CurrencyPair is a BASE/QUOTE ticker.
type CurrencyPair struct {
	Base  string `json:"Base"`
	Quote string `json:"Quote"`
}

func NewCurrencyPair(base, quote string) CurrencyPair {
	return CurrencyPair{Base: base, Quote: quote}
}

func (cp CurrencyPair) String() string { return cp.Base + "/" + cp.Quote }

// ValidateBasic requires both assets to be non empty and upper case.
func (cp CurrencyPair) ValidateBasic() error {
	if cp.Base == "" || cp.Quote == "" {
		return fmt.Errorf("empty asset in currency pair %s", cp)
	}
	if strings.ToUpper(cp.Base) != cp.Base || strings.ToUpper(cp.Quote) != cp.Quote {
		return fmt.Errorf("currency pair %s must be upper case", cp)
	}
	return nil
}

// CurrencyPairFromString parses "BASE/QUOTE".
func CurrencyPairFromString(s string) (CurrencyPair, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return CurrencyPair{}, fmt.Errorf("incorrectly formatted currency pair %q", s)
	}
	cp := NewCurrencyPair(parts[0], parts[1])
	return cp, cp.ValidateBasic()
}

// QuotePrice is a price reported at a block. BlockTimestamp is in unix
// seconds.
type QuotePrice struct {
	Price          string `json:"price"`
	BlockTimestamp int64  `json:"block_timestamp"`
	BlockHeight    uint64 `json:"block_height"`
}

// ValidatePrice requires price to be a non-negative integer.
func ValidatePrice(price string) error {
	p, ok := new(big.Int).SetString(price, 10)
	if !ok || p.Sign() < 0 {
		return fmt.Errorf("invalid price %q", price)
	}
	return nil
}

// CurrencyPairState is the stored state of a currency pair. Nonce counts
// price updates.
type CurrencyPairState struct {
	Price    QuotePrice `json:"price"`
	HasPrice bool       `json:"has_price"`
	Nonce    uint64     `json:"nonce"`
	Id       uint64     `json:"id"`
	Decimals uint64     `json:"decimals"`
}

// CurrencyPairGenesis seeds a currency pair with an optional price.
type CurrencyPairGenesis struct {
	CurrencyPair CurrencyPair `json:"currency_pair"`
	Price        string       `json:"price"`
	Decimals     uint64       `json:"decimals"`
}

type GenesisState struct {
	CurrencyPairGenesis []CurrencyPairGenesis `json:"currency_pair_genesis"`
}

// DefaultGenesisState holds ATOM/USDT priced at 4480000 with 8 decimals.
func DefaultGenesisState() GenesisState {
	return GenesisState{CurrencyPairGenesis: []CurrencyPairGenesis{{
		CurrencyPair: NewCurrencyPair("ATOM", "USDT"),
		Price:        "4480000",
		Decimals:     8,
	}}}
}

func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.CurrencyPairGenesis))
	for _, cpg := range gs.CurrencyPairGenesis {
		if err := cpg.CurrencyPair.ValidateBasic(); err != nil {
			return err
		}
		if _, ok := seen[cpg.CurrencyPair.String()]; ok {
			return fmt.Errorf("duplicate currency pair %s", cpg.CurrencyPair)
		}
		seen[cpg.CurrencyPair.String()] = struct{}{}
		if cpg.Price != "" {
			if err := ValidatePrice(cpg.Price); err != nil {
				return err
			}
		}
	}
	return nil
}
