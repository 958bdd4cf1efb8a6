package types

import (
	"fmt"

	sdk "github.com/okx/testtube/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

// Ticker describes the currency pair a market prices.
type Ticker struct {
	CurrencyPair     oracletypes.CurrencyPair `json:"currency_pair"`
	Decimals         uint64                   `json:"decimals"`
	MinProviderCount uint64                   `json:"min_provider_count"`
	Enabled          bool                     `json:"enabled"`
	Metadata_JSON    string                   `json:"metadata_JSON"`
}

func (t Ticker) String() string { return t.CurrencyPair.String() }

func (t Ticker) ValidateBasic() error {
	if err := t.CurrencyPair.ValidateBasic(); err != nil {
		return err
	}
	if t.Decimals == 0 || t.Decimals > 36 {
		return fmt.Errorf("ticker %s: decimals must be between 1 and 36, got %d", t, t.Decimals)
	}
	if t.MinProviderCount == 0 {
		return fmt.Errorf("ticker %s: min provider count must be positive", t)
	}
	return nil
}

// ProviderConfig names an off chain source for a ticker. An empty
// NormalizeByPair means the price is used as reported.
type ProviderConfig struct {
	Name            string                   `json:"name"`
	OffChainTicker  string                   `json:"off_chain_ticker"`
	NormalizeByPair oracletypes.CurrencyPair `json:"normalize_by_pair"`
	Invert          bool                     `json:"invert"`
	Metadata_JSON   string                   `json:"metadata_JSON"`
}

func (pc ProviderConfig) ValidateBasic() error {
	if pc.Name == "" {
		return fmt.Errorf("provider name must not be empty")
	}
	if pc.OffChainTicker == "" {
		return fmt.Errorf("provider %s: off chain ticker must not be empty", pc.Name)
	}
	if pc.NormalizeByPair != (oracletypes.CurrencyPair{}) {
		if err := pc.NormalizeByPair.ValidateBasic(); err != nil {
			return err
		}
	}
	return nil
}

type Market struct {
	Ticker          Ticker           `json:"ticker"`
	ProviderConfigs []ProviderConfig `json:"provider_configs"`
}

func (m Market) ValidateBasic() error {
	if err := m.Ticker.ValidateBasic(); err != nil {
		return err
	}
	if uint64(len(m.ProviderConfigs)) < m.Ticker.MinProviderCount {
		return fmt.Errorf("market %s: %d providers is less than the minimum %d", m.Ticker, len(m.ProviderConfigs), m.Ticker.MinProviderCount)
	}
	seen := make(map[string]struct{}, len(m.ProviderConfigs))
	for _, pc := range m.ProviderConfigs {
		if err := pc.ValidateBasic(); err != nil {
			return err
		}
		if _, ok := seen[pc.Name]; ok {
			return fmt.Errorf("market %s: duplicate provider %s", m.Ticker, pc.Name)
		}
		seen[pc.Name] = struct{}{}
	}
	return nil
}

// MarketMap lists every market ordered by ticker.
type MarketMap struct {
	Markets []Market `json:"markets"`
}

// Params gates market changes: MarketAuthorities may create and update
// markets and Admin may remove authorities.
type Params struct {
	MarketAuthorities []string `json:"market_authorities"`
	Admin             string   `json:"admin"`
}

func DefaultParams(authorities []string, admin string) Params {
	return Params{MarketAuthorities: authorities, Admin: admin}
}

func (p Params) Validate() error {
	if len(p.MarketAuthorities) == 0 {
		return fmt.Errorf("at least one market authority is required")
	}
	seen := make(map[string]struct{}, len(p.MarketAuthorities))
	for _, authority := range p.MarketAuthorities {
		if err := sdk.ValidateAddress(authority); err != nil {
			return fmt.Errorf("invalid market authority: %w", err)
		}
		if _, ok := seen[authority]; ok {
			return fmt.Errorf("duplicate market authority %s", authority)
		}
		seen[authority] = struct{}{}
	}
	if err := sdk.ValidateAddress(p.Admin); err != nil {
		return fmt.Errorf("invalid admin: %w", err)
	}
	return nil
}

// IsAuthority reports whether addr is a market authority.
func (p Params) IsAuthority(addr string) bool {
	for _, authority := range p.MarketAuthorities {
		if authority == addr {
			return true
		}
	}
	return false
}
