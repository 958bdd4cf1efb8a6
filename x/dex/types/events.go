package types

import (
	"math/big"
	"strconv"

	sdk "github.com/okx/testtube/types"
)

const (
	EventTypeDeposit          = "DepositLP"
	EventTypeWithdraw         = "WithdrawLP"
	EventTypePlaceLimitOrder  = "PlaceLimitOrder"
	EventTypeCancelLimitOrder = "CancelLimitOrder"
	EventTypeTickUpdate       = "TickUpdate"

	AttributeCreator    = "Creator"
	AttributeReceiver   = "Receiver"
	AttributeToken0     = "TokenZero"
	AttributeToken1     = "TokenOne"
	AttributeTokenIn    = "TokenIn"
	AttributeTokenOut   = "TokenOut"
	AttributeTickIndex  = "TickIndex"
	AttributeFee        = "Fee"
	AttributeReserves0  = "ReservesZeroDeposited"
	AttributeReserves1  = "ReservesOneDeposited"
	AttributeSharesMint = "SharesMinted"
	AttributeSharesBurn = "SharesRemoved"
	AttributeAmountIn   = "AmountIn"
	AttributeAmountOut  = "AmountOut"
	AttributeOrderType  = "OrderType"
	AttributeTrancheKey = "TrancheKey"
	AttributePoolID     = "PoolID"
)

func CreateDepositEvent(creator, receiver string, pool Pool, amount0, amount1, shares *big.Int) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeCreator, creator),
		sdk.NewAttribute(AttributeReceiver, receiver),
		sdk.NewAttribute(AttributeToken0, pool.PairId.Token0),
		sdk.NewAttribute(AttributeToken1, pool.PairId.Token1),
		sdk.NewAttribute(AttributeTickIndex, strconv.FormatInt(pool.CenterTickIndex, 10)),
		sdk.NewAttribute(AttributeFee, strconv.FormatUint(pool.Fee, 10)),
		sdk.NewAttribute(AttributeReserves0, amount0.String()),
		sdk.NewAttribute(AttributeReserves1, amount1.String()),
		sdk.NewAttribute(AttributeSharesMint, shares.String()),
		sdk.NewAttribute(AttributePoolID, strconv.FormatUint(pool.Id, 10)),
	)
}

func CreateWithdrawEvent(creator, receiver string, pool Pool, amount0, amount1, shares *big.Int) sdk.Event {
	return sdk.NewEvent(EventTypeWithdraw,
		sdk.NewAttribute(AttributeCreator, creator),
		sdk.NewAttribute(AttributeReceiver, receiver),
		sdk.NewAttribute(AttributeToken0, pool.PairId.Token0),
		sdk.NewAttribute(AttributeToken1, pool.PairId.Token1),
		sdk.NewAttribute(AttributeTickIndex, strconv.FormatInt(pool.CenterTickIndex, 10)),
		sdk.NewAttribute(AttributeFee, strconv.FormatUint(pool.Fee, 10)),
		sdk.NewAttribute(AttributeReserves0, amount0.String()),
		sdk.NewAttribute(AttributeReserves1, amount1.String()),
		sdk.NewAttribute(AttributeSharesBurn, shares.String()),
		sdk.NewAttribute(AttributePoolID, strconv.FormatUint(pool.Id, 10)),
	)
}

func CreatePlaceLimitOrderEvent(creator, receiver, tokenIn, tokenOut string, amountIn *big.Int, tick int64, orderType LimitOrderType, trancheKey string) sdk.Event {
	return sdk.NewEvent(EventTypePlaceLimitOrder,
		sdk.NewAttribute(AttributeCreator, creator),
		sdk.NewAttribute(AttributeReceiver, receiver),
		sdk.NewAttribute(AttributeTokenIn, tokenIn),
		sdk.NewAttribute(AttributeTokenOut, tokenOut),
		sdk.NewAttribute(AttributeAmountIn, amountIn.String()),
		sdk.NewAttribute(AttributeTickIndex, strconv.FormatInt(tick, 10)),
		sdk.NewAttribute(AttributeOrderType, orderType.String()),
		sdk.NewAttribute(AttributeTrancheKey, trancheKey),
	)
}

func CreateCancelLimitOrderEvent(creator string, tradePairID TradePairID, amountOut *big.Int, trancheKey string) sdk.Event {
	return sdk.NewEvent(EventTypeCancelLimitOrder,
		sdk.NewAttribute(AttributeCreator, creator),
		sdk.NewAttribute(AttributeTokenIn, tradePairID.MakerDenom),
		sdk.NewAttribute(AttributeTokenOut, tradePairID.TakerDenom),
		sdk.NewAttribute(AttributeAmountOut, amountOut.String()),
		sdk.NewAttribute(AttributeTrancheKey, trancheKey),
	)
}
