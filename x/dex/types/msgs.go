package types

import (
	"math/big"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

type DepositOptions struct {
	DisableAutoswap bool `json:"disable_autoswap"`
	FailTxOnBel     bool `json:"fail_tx_on_bel"`
}

// MsgDeposit adds liquidity to one pool per index of the arrays.
type MsgDeposit struct {
	Creator         string           `json:"creator"`
	Receiver        string           `json:"receiver"`
	TokenA          string           `json:"token_a"`
	TokenB          string           `json:"token_b"`
	AmountsA        []string         `json:"amounts_a"`
	AmountsB        []string         `json:"amounts_b"`
	TickIndexesAToB []int64          `json:"tick_indexes_a_to_b"`
	Fees            []uint64         `json:"fees"`
	Options         []DepositOptions `json:"options"`
}

func validateCreatorReceiver(creator, receiver string) error {
	if err := sdk.ValidateAddress(creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if err := sdk.ValidateAddress(receiver); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receiver address (%s)", err)
	}
	return nil
}

func validatePair(tokenA, tokenB string) error {
	if err := sdk.ValidateDenom(tokenA); err != nil {
		return sdkerrors.Wrap(ErrInvalidTradingPair, err.Error())
	}
	if err := sdk.ValidateDenom(tokenB); err != nil {
		return sdkerrors.Wrap(ErrInvalidTradingPair, err.Error())
	}
	if tokenA == tokenB {
		return sdkerrors.Wrapf(ErrInvalidTradingPair, "%s<>%s", tokenA, tokenB)
	}
	return nil
}

func (m MsgDeposit) ValidateBasic() error {
	if err := validateCreatorReceiver(m.Creator, m.Receiver); err != nil {
		return err
	}
	if err := validatePair(m.TokenA, m.TokenB); err != nil {
		return err
	}
	n := len(m.TickIndexesAToB)
	if n == 0 || len(m.AmountsA) != n || len(m.AmountsB) != n || len(m.Fees) != n {
		return ErrUnbalancedTxArray
	}
	if len(m.Options) != 0 && len(m.Options) != n {
		return ErrUnbalancedTxArray
	}
	for i := 0; i < n; i++ {
		a, okA := ParseAmount(m.AmountsA[i])
		b, okB := ParseAmount(m.AmountsB[i])
		if !okA || !okB || (a.Sign() == 0 && b.Sign() == 0) {
			return ErrZeroDeposit
		}
		if IsTickOutOfRange(m.TickIndexesAToB[i]) {
			return ErrTickOutsideRange
		}
	}
	return nil
}

func (m MsgDeposit) GetSigner() string { return m.Creator }

type FailedDeposit struct {
	DepositIdx uint64 `json:"deposit_idx"`
	Error      string `json:"error"`
}

type MsgDepositResponse struct {
	Reserve0Deposited []string        `json:"reserve0_deposited"`
	Reserve1Deposited []string        `json:"reserve1_deposited"`
	FailedDeposits    []FailedDeposit `json:"failed_deposits"`
	SharesIssued      sdk.Coins       `json:"shares_issued"`
}

// MsgWithdrawal burns pool shares for the underlying reserves.
type MsgWithdrawal struct {
	Creator         string   `json:"creator"`
	Receiver        string   `json:"receiver"`
	TokenA          string   `json:"token_a"`
	TokenB          string   `json:"token_b"`
	SharesToRemove  []string `json:"shares_to_remove"`
	TickIndexesAToB []int64  `json:"tick_indexes_a_to_b"`
	Fees            []uint64 `json:"fees"`
}

func (m MsgWithdrawal) ValidateBasic() error {
	if err := validateCreatorReceiver(m.Creator, m.Receiver); err != nil {
		return err
	}
	if err := validatePair(m.TokenA, m.TokenB); err != nil {
		return err
	}
	n := len(m.TickIndexesAToB)
	if n == 0 || len(m.SharesToRemove) != n || len(m.Fees) != n {
		return ErrUnbalancedTxArray
	}
	for i := 0; i < n; i++ {
		shares, ok := ParseAmount(m.SharesToRemove[i])
		if !ok || shares.Sign() == 0 {
			return ErrZeroWithdraw
		}
		if IsTickOutOfRange(m.TickIndexesAToB[i]) {
			return ErrTickOutsideRange
		}
	}
	return nil
}

func (m MsgWithdrawal) GetSigner() string { return m.Creator }

type MsgWithdrawalResponse struct {
	Reserve0Withdrawn string    `json:"reserve0_withdrawn"`
	Reserve1Withdrawn string    `json:"reserve1_withdrawn"`
	SharesBurned      sdk.Coins `json:"shares_burned"`
}

// MsgPlaceLimitOrder sells AmountIn of TokenIn for TokenOut at
// TickIndexInToOut, or at LimitSellPrice when it is set. ExpirationTime is
// unix seconds.
type MsgPlaceLimitOrder struct {
	Creator          string         `json:"creator"`
	Receiver         string         `json:"receiver"`
	TokenIn          string         `json:"token_in"`
	TokenOut         string         `json:"token_out"`
	TickIndexInToOut int64          `json:"tick_index_in_to_out"`
	AmountIn         string         `json:"amount_in"`
	OrderType        LimitOrderType `json:"order_type"`
	ExpirationTime   int64          `json:"expiration_time"`
	MaxAmountOut     string         `json:"max_amount_out"`
	LimitSellPrice   string         `json:"limit_sell_price"`
}

func (m MsgPlaceLimitOrder) ValidateBasic() error {
	if err := validateCreatorReceiver(m.Creator, m.Receiver); err != nil {
		return err
	}
	if err := validatePair(m.TokenIn, m.TokenOut); err != nil {
		return err
	}
	amountIn, ok := ParseAmount(m.AmountIn)
	if !ok || amountIn.Sign() == 0 {
		return ErrZeroLimitOrder
	}
	if _, ok := limitOrderTypeNames[m.OrderType]; !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "unknown order type %d", m.OrderType)
	}
	if m.OrderType.IsGoodTil() && m.ExpirationTime == 0 {
		return ErrGoodTilOrderWithoutExpiration
	}
	if !m.OrderType.IsGoodTil() && m.ExpirationTime != 0 {
		return ErrExpirationOnWrongOrderType
	}
	if m.MaxAmountOut != "" {
		if _, ok := ParseAmount(m.MaxAmountOut); !ok {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid max amount out %q", m.MaxAmountOut)
		}
	}
	if m.LimitSellPrice != "" {
		price, ok := new(big.Rat).SetString(m.LimitSellPrice)
		if !ok {
			return sdkerrors.Wrapf(ErrInvalidPrice, "%q", m.LimitSellPrice)
		}
		if _, err := PriceToTickIndex(price); err != nil {
			return sdkerrors.Wrap(ErrInvalidPrice, err.Error())
		}
	} else if IsTickOutOfRange(m.TickIndexInToOut) {
		return ErrTickOutsideRange
	}
	return nil
}

func (m MsgPlaceLimitOrder) GetSigner() string { return m.Creator }

type MsgPlaceLimitOrderResponse struct {
	TrancheKey   string   `json:"trancheKey"`
	CoinIn       sdk.Coin `json:"coin_in"`
	TakerCoinOut sdk.Coin `json:"taker_coin_out"`
	TakerCoinIn  sdk.Coin `json:"taker_coin_in"`
}

type MsgWithdrawFilledLimitOrder struct {
	Creator    string `json:"creator"`
	TrancheKey string `json:"tranche_key"`
}

func (m MsgWithdrawFilledLimitOrder) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	return nil
}

func (m MsgWithdrawFilledLimitOrder) GetSigner() string { return m.Creator }

type MsgWithdrawFilledLimitOrderResponse struct {
	TakerCoinOut sdk.Coin `json:"taker_coin_out"`
	MakerCoinOut sdk.Coin `json:"maker_coin_out"`
}

type MsgCancelLimitOrder struct {
	Creator    string `json:"creator"`
	TrancheKey string `json:"tranche_key"`
}

func (m MsgCancelLimitOrder) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if m.TrancheKey == "" {
		return ErrValidLimitOrderTrancheNotFound
	}
	return nil
}

func (m MsgCancelLimitOrder) GetSigner() string { return m.Creator }

type MsgCancelLimitOrderResponse struct {
	TakerCoinOut sdk.Coin `json:"taker_coin_out"`
	MakerCoinOut sdk.Coin `json:"maker_coin_out"`
}

// MultiHopRoute is a sequence of denoms swapped through in order.
type MultiHopRoute struct {
	Hops []string `json:"hops"`
}

type MsgMultiHopSwap struct {
	Creator        string          `json:"creator"`
	Receiver       string          `json:"receiver"`
	Routes         []MultiHopRoute `json:"routes"`
	AmountIn       string          `json:"amount_in"`
	ExitLimitPrice string          `json:"exit_limit_price"`
	PickBestRoute  bool            `json:"pick_best_route"`
}

func (m MsgMultiHopSwap) ValidateBasic() error {
	if err := validateCreatorReceiver(m.Creator, m.Receiver); err != nil {
		return err
	}
	if len(m.Routes) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "missing route")
	}
	return nil
}

func (m MsgMultiHopSwap) GetSigner() string { return m.Creator }

type MsgMultiHopSwapResponse struct {
	CoinOut sdk.Coin      `json:"coin_out"`
	Route   MultiHopRoute `json:"route"`
	Dust    sdk.Coins     `json:"dust"`
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (m MsgUpdateParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority (%s)", err)
	}
	return m.Params.Validate()
}

func (m MsgUpdateParams) GetSigner() string { return m.Authority }

type MsgUpdateParamsResponse struct{}
