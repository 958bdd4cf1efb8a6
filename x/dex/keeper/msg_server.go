package keeper

import (
	"math/big"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the dex message handlers.
func NewMsgServerImpl(k Keeper) msgServer { return msgServer{Keeper: k} }

func (k msgServer) checkPaused(ctx sdk.Context) error {
	if k.GetParams(ctx).Paused {
		return types.ErrDexPaused
	}
	return nil
}

func parseAmounts(amounts []string) []*big.Int {
	out := make([]*big.Int, len(amounts))
	for i, a := range amounts {
		out[i] = amountOf(a)
	}
	return out
}

func amountStrings(amounts []*big.Int) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.String()
	}
	return out
}

// normalizeTicks converts ticks quoted from tokenA to token0 terms.
func normalizeTicks(pairID types.PairID, tokenA string, ticks []int64) []int64 {
	out := make([]int64, len(ticks))
	for i, tick := range ticks {
		if tokenA == pairID.Token0 {
			out[i] = tick
		} else {
			out[i] = -tick
		}
	}
	return out
}

func (k msgServer) Deposit(ctx sdk.Context, msg types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}
	pairID := types.NewPairID(msg.TokenA, msg.TokenB)
	amounts0, amounts1 := parseAmounts(msg.AmountsA), parseAmounts(msg.AmountsB)
	if msg.TokenA != pairID.Token0 {
		amounts0, amounts1 = amounts1, amounts0
	}
	ticks := normalizeTicks(pairID, msg.TokenA, msg.TickIndexesAToB)

	deposited0, deposited1, shares, err := k.DepositCore(ctx, pairID, msg.Creator, msg.Receiver, amounts0, amounts1, ticks, msg.Fees)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{
		Reserve0Deposited: amountStrings(deposited0),
		Reserve1Deposited: amountStrings(deposited1),
		FailedDeposits:    []types.FailedDeposit{},
		SharesIssued:      shares,
	}, nil
}

func (k msgServer) Withdrawal(ctx sdk.Context, msg types.MsgWithdrawal) (*types.MsgWithdrawalResponse, error) {
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}
	pairID := types.NewPairID(msg.TokenA, msg.TokenB)
	ticks := normalizeTicks(pairID, msg.TokenA, msg.TickIndexesAToB)

	out0, out1, burned, err := k.WithdrawCore(ctx, pairID, msg.Creator, msg.Receiver, parseAmounts(msg.SharesToRemove), ticks, msg.Fees)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawalResponse{
		Reserve0Withdrawn: out0.String(),
		Reserve1Withdrawn: out1.String(),
		SharesBurned:      burned,
	}, nil
}

func (k msgServer) PlaceLimitOrder(ctx sdk.Context, msg types.MsgPlaceLimitOrder) (*types.MsgPlaceLimitOrderResponse, error) {
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}
	tick := msg.TickIndexInToOut
	if msg.LimitSellPrice != "" {
		price, _ := new(big.Rat).SetString(msg.LimitSellPrice)
		var err error
		if tick, err = types.PriceToTickIndex(price); err != nil {
			return nil, sdkerrors.Wrap(types.ErrInvalidPrice, err.Error())
		}
	}

	trancheKey, coinIn, err := k.PlaceLimitOrderCore(ctx, msg.TokenIn, msg.TokenOut, amountOf(msg.AmountIn), tick, msg.OrderType, msg.ExpirationTime, msg.Creator, msg.Receiver)
	if err != nil {
		return nil, err
	}
	return &types.MsgPlaceLimitOrderResponse{
		TrancheKey:   trancheKey,
		CoinIn:       coinIn,
		TakerCoinOut: sdk.NewCoin(msg.TokenOut, 0),
		TakerCoinIn:  sdk.NewCoin(msg.TokenIn, 0),
	}, nil
}

func (k msgServer) CancelLimitOrder(ctx sdk.Context, msg types.MsgCancelLimitOrder) (*types.MsgCancelLimitOrderResponse, error) {
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}
	takerCoinOut, makerCoinOut, err := k.CancelLimitOrderCore(ctx, msg.TrancheKey, msg.Creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgCancelLimitOrderResponse{TakerCoinOut: takerCoinOut, MakerCoinOut: makerCoinOut}, nil
}

func (k msgServer) UpdateParams(ctx sdk.Context, msg types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg.Authority != k.authority {
		return nil, sdkerrors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", k.authority, msg.Authority)
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
