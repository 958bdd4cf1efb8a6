package types

import (
	"fmt"
	"strings"

	sdkerrors "github.com/okx/testtube/types/errors"
)

const pairSeparator = "<>"

// PairID names a token pair with Token0 < Token1.
type PairID struct {
	Token0 string `json:"token0"`
	Token1 string `json:"token1"`
}

// NewPairID orders tokenA and tokenB.
func NewPairID(tokenA, tokenB string) PairID {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	return PairID{Token0: tokenA, Token1: tokenB}
}

func (p PairID) String() string { return p.Token0 + pairSeparator + p.Token1 }

// NewPairIDFromString parses "token0<>token1".
func NewPairIDFromString(s string) (PairID, error) {
	tokens := strings.Split(s, pairSeparator)
	if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" {
		return PairID{}, sdkerrors.Wrapf(ErrInvalidPairIDStr, "%s", s)
	}
	pairID := NewPairID(tokens[0], tokens[1])
	if pairID.Token0 != tokens[0] {
		return PairID{}, sdkerrors.Wrapf(ErrInvalidPairIDStr, "%s is not ordered", s)
	}
	return pairID, nil
}

// MustTradePairIDFromMaker returns the side of p where maker is placed.
func (p PairID) MustTradePairIDFromMaker(maker string) TradePairID {
	switch maker {
	case p.Token0:
		return TradePairID{MakerDenom: p.Token0, TakerDenom: p.Token1}
	case p.Token1:
		return TradePairID{MakerDenom: p.Token1, TakerDenom: p.Token0}
	}
	panic(fmt.Sprintf("%s is not part of pair %s", maker, p))
}

// TradePairIDFromTaker returns the side of p where taker is paid in.
func (p PairID) TradePairIDFromTaker(taker string) (TradePairID, error) {
	switch taker {
	case p.Token0:
		return TradePairID{MakerDenom: p.Token1, TakerDenom: p.Token0}, nil
	case p.Token1:
		return TradePairID{MakerDenom: p.Token0, TakerDenom: p.Token1}, nil
	}
	return TradePairID{}, sdkerrors.Wrapf(ErrInvalidTradingPair, "%s is not part of pair %s", taker, p)
}

// TradePairID is one direction of a pair: makers provide MakerDenom and
// takers pay TakerDenom.
type TradePairID struct {
	MakerDenom string `json:"maker_denom"`
	TakerDenom string `json:"taker_denom"`
}

func (t TradePairID) String() string { return t.MakerDenom + pairSeparator + t.TakerDenom }

func (t TradePairID) PairID() PairID { return NewPairID(t.MakerDenom, t.TakerDenom) }

// IsTakerDenomToken0 reports whether takers pay token0.
func (t TradePairID) IsTakerDenomToken0() bool { return t.TakerDenom == t.PairID().Token0 }

// TickIndexTakerToMaker converts a normalized tick to this direction.
func (t TradePairID) TickIndexTakerToMaker(tickIndexNormalized int64) int64 {
	if t.IsTakerDenomToken0() {
		return tickIndexNormalized
	}
	return -tickIndexNormalized
}
