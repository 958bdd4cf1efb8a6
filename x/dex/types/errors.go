package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrInvalidTradingPair             = sdkerrors.Register(ModuleName, 1102, "invalid token pair")
	ErrInsufficientShares             = sdkerrors.Register(ModuleName, 1104, "insufficient shares")
	ErrValidPoolNotFound              = sdkerrors.Register(ModuleName, 1105, "pool not found")
	ErrUnbalancedTxArray              = sdkerrors.Register(ModuleName, 1110, "transaction input arrays are not of the same length")
	ErrValidLimitOrderTrancheNotFound = sdkerrors.Register(ModuleName, 1111, "limit order tranche not found")
	ErrActiveLimitOrderNotFound       = sdkerrors.Register(ModuleName, 1112, "no active limit order found")
	ErrZeroDeposit                    = sdkerrors.Register(ModuleName, 1113, "all deposits must contain at least one non zero amount")
	ErrZeroWithdraw                   = sdkerrors.Register(ModuleName, 1114, "withdraw amounts must be positive")
	ErrZeroLimitOrder                 = sdkerrors.Register(ModuleName, 1115, "limit order amount must be positive")
	ErrTickOutsideRange               = sdkerrors.Register(ModuleName, 1116, "supplying a tick outside the range of [-559680, 559680] is not allowed")
	ErrInvalidFee                     = sdkerrors.Register(ModuleName, 1117, "fee must be one of the fee tiers")
	ErrFoKLimitOrderNotFilled         = sdkerrors.Register(ModuleName, 1118, "fill or kill limit order couldn't be executed in its entirety")
	ErrExpirationOnWrongOrderType     = sdkerrors.Register(ModuleName, 1119, "expiration time can only be used with GOOD_TIL_TIME limit orders")
	ErrGoodTilOrderWithoutExpiration  = sdkerrors.Register(ModuleName, 1120, "GOOD_TIL_TIME limit orders must have an expiration time")
	ErrExpirationTimeInPast           = sdkerrors.Register(ModuleName, 1121, "limit order expiration time must be greater than current block time")
	ErrDexPaused                      = sdkerrors.Register(ModuleName, 1122, "dex has been paused, all messages are disabled")
	ErrInvalidAuthority               = sdkerrors.Register(ModuleName, 1123, "invalid authority")
	ErrInvalidPrice                   = sdkerrors.Register(ModuleName, 1124, "invalid limit sell price")
	ErrInvalidPairIDStr               = sdkerrors.Register(ModuleName, 1125, "invalid pair id string")
	ErrOverJITPerBlockLimit           = sdkerrors.Register(ModuleName, 1126, "maximum JIT limit orders per block reached")
)
