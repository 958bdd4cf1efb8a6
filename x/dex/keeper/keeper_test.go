package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/testutil"
	sdk "github.com/okx/testtube/types"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	authtypes "github.com/okx/testtube/x/auth/types"
	bankkeeper "github.com/okx/testtube/x/bank/keeper"
	banktypes "github.com/okx/testtube/x/bank/types"
	"github.com/okx/testtube/x/dex/keeper"
	"github.com/okx/testtube/x/dex/types"
)

const prefix = "neutron"

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	bk        bankkeeper.BaseKeeper
	keeper    keeper.Keeper
	querier   keeper.Querier
	authority string
	alice     string
	bob       string
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.ctx = testutil.DefaultContext()
	ak := authkeeper.NewAccountKeeper(authtypes.StoreKey, prefix, map[string][]string{
		types.ModuleName: {authtypes.Minter, authtypes.Burner},
	})
	suite.authority = ak.GetModuleAddress("gov")
	suite.bk = bankkeeper.NewBaseKeeper(banktypes.StoreKey, ak, suite.authority)
	suite.keeper = keeper.NewKeeper(types.StoreKey, suite.bk, suite.authority)
	suite.querier = keeper.NewQuerier(suite.keeper)
	suite.alice = testutil.Addr(prefix, "alice")
	suite.bob = testutil.Addr(prefix, "bob")
	suite.Require().NoError(suite.bk.InitGenesisBalance(suite.ctx, suite.alice,
		sdk.NewCoins(sdk.NewCoin("uatom", 1000), sdk.NewCoin("untrn", 1000))))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) balance(addr, denom string) int64 {
	return suite.bk.GetBalance(suite.ctx, addr, denom).AmountOf().Int64()
}

func (suite *KeeperTestSuite) placeOrder(orderType types.LimitOrderType, amount string, tick, expiration int64) (*types.MsgPlaceLimitOrderResponse, error) {
	return keeper.NewMsgServerImpl(suite.keeper).PlaceLimitOrder(suite.ctx, types.MsgPlaceLimitOrder{
		Creator:          suite.alice,
		Receiver:         suite.alice,
		TokenIn:          "uatom",
		TokenOut:         "untrn",
		TickIndexInToOut: tick,
		AmountIn:         amount,
		OrderType:        orderType,
		ExpirationTime:   expiration,
	})
}

func (suite *KeeperTestSuite) TestDepositAndWithdraw() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	res, err := ms.Deposit(suite.ctx, types.MsgDeposit{
		Creator:         suite.alice,
		Receiver:        suite.alice,
		TokenA:          "untrn",
		TokenB:          "uatom",
		AmountsA:        []string{"100"},
		AmountsB:        []string{"50"},
		TickIndexesAToB: []int64{10},
		Fees:            []uint64{1},
	})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{"50"}, res.Reserve0Deposited)
	suite.Require().Equal([]string{"100"}, res.Reserve1Deposited)
	suite.Require().Equal(sdk.NewCoins(sdk.NewCoin("neutron/pool/0", 150)), res.SharesIssued)
	suite.Require().Equal(int64(950), suite.balance(suite.alice, "uatom"))
	suite.Require().Equal(int64(900), suite.balance(suite.alice, "untrn"))

	pool, found := suite.keeper.GetPool(suite.ctx, types.NewPairID("uatom", "untrn"), -10, 1)
	suite.Require().True(found)
	suite.Require().Equal("150", pool.TotalShares)

	deposits, err := suite.querier.UserDepositsAll(suite.ctx, &types.QueryAllUserDepositsRequest{Address: suite.alice, IncludePoolData: true})
	suite.Require().NoError(err)
	suite.Require().Len(deposits.Deposits, 1)
	suite.Require().Equal("150", deposits.Deposits[0].SharesOwned)
	suite.Require().NotNil(deposits.Deposits[0].Pool)

	wres, err := ms.Withdrawal(suite.ctx, types.MsgWithdrawal{
		Creator:         suite.alice,
		Receiver:        suite.bob,
		TokenA:          "untrn",
		TokenB:          "uatom",
		SharesToRemove:  []string{"75"},
		TickIndexesAToB: []int64{10},
		Fees:            []uint64{1},
	})
	suite.Require().NoError(err)
	suite.Require().Equal("25", wres.Reserve0Withdrawn)
	suite.Require().Equal("50", wres.Reserve1Withdrawn)
	suite.Require().Equal(int64(25), suite.balance(suite.bob, "uatom"))
	suite.Require().Equal(int64(50), suite.balance(suite.bob, "untrn"))
	suite.Require().Equal(int64(75), suite.balance(suite.alice, "neutron/pool/0"))

	_, err = ms.Withdrawal(suite.ctx, types.MsgWithdrawal{
		Creator:         suite.alice,
		Receiver:        suite.alice,
		TokenA:          "untrn",
		TokenB:          "uatom",
		SharesToRemove:  []string{"76"},
		TickIndexesAToB: []int64{10},
		Fees:            []uint64{1},
	})
	suite.Require().ErrorIs(err, types.ErrInsufficientShares)
}

func (suite *KeeperTestSuite) TestDepositInvalidFee() {
	_, err := keeper.NewMsgServerImpl(suite.keeper).Deposit(suite.ctx, types.MsgDeposit{
		Creator:         suite.alice,
		Receiver:        suite.alice,
		TokenA:          "uatom",
		TokenB:          "untrn",
		AmountsA:        []string{"10"},
		AmountsB:        []string{"0"},
		TickIndexesAToB: []int64{0},
		Fees:            []uint64{7},
	})
	suite.Require().ErrorIs(err, types.ErrInvalidFee)
}

func (suite *KeeperTestSuite) TestPlaceAndCancelLimitOrder() {
	res, err := suite.placeOrder(types.GOOD_TIL_CANCELLED, "10", 5, 0)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(res.TrancheKey)
	suite.Require().Equal(sdk.NewCoin("uatom", 10), res.CoinIn)
	suite.Require().Equal(int64(990), suite.balance(suite.alice, "uatom"))

	again, err := suite.placeOrder(types.GOOD_TIL_CANCELLED, "5", 5, 0)
	suite.Require().NoError(err)
	suite.Require().Equal(res.TrancheKey, again.TrancheKey)

	user, err := suite.querier.LimitOrderTrancheUser(suite.ctx, &types.QueryGetLimitOrderTrancheUserRequest{
		Address:                suite.alice,
		TrancheKey:             res.TrancheKey,
		CalcWithdrawableShares: true,
	})
	suite.Require().NoError(err)
	suite.Require().Equal("15", user.LimitOrderTrancheUser.SharesOwned)
	suite.Require().Equal("0", user.WithdrawableShares)

	cres, err := keeper.NewMsgServerImpl(suite.keeper).CancelLimitOrder(suite.ctx, types.MsgCancelLimitOrder{Creator: suite.alice, TrancheKey: res.TrancheKey})
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin("uatom", 15), cres.MakerCoinOut)
	suite.Require().Equal(int64(1000), suite.balance(suite.alice, "uatom"))

	_, err = keeper.NewMsgServerImpl(suite.keeper).CancelLimitOrder(suite.ctx, types.MsgCancelLimitOrder{Creator: suite.alice, TrancheKey: res.TrancheKey})
	suite.Require().ErrorIs(err, types.ErrValidLimitOrderTrancheNotFound)
}

func (suite *KeeperTestSuite) TestTakerOnlyOrders() {
	_, err := suite.placeOrder(types.FILL_OR_KILL, "10", 0, 0)
	suite.Require().ErrorIs(err, types.ErrFoKLimitOrderNotFilled)

	res, err := suite.placeOrder(types.IMMEDIATE_OR_CANCEL, "10", 0, 0)
	suite.Require().NoError(err)
	suite.Require().Empty(res.TrancheKey)
	suite.Require().Equal(int64(1000), suite.balance(suite.alice, "uatom"))
}

func (suite *KeeperTestSuite) TestGoodTilTimeExpires() {
	now := suite.ctx.BlockTime().Unix()
	_, err := suite.placeOrder(types.GOOD_TIL_TIME, "10", 0, now)
	suite.Require().ErrorIs(err, types.ErrExpirationTimeInPast)

	res, err := suite.placeOrder(types.GOOD_TIL_TIME, "10", 0, now+10)
	suite.Require().NoError(err)
	key := types.LimitOrderTrancheKey{
		TradePairId:           types.TradePairID{MakerDenom: "uatom", TakerDenom: "untrn"},
		TickIndexTakerToMaker: 0,
		TrancheKey:            res.TrancheKey,
	}

	suite.keeper.EndBlocker(suite.ctx)
	_, found := suite.keeper.GetLimitOrderTranche(suite.ctx, key)
	suite.Require().True(found)

	header := suite.ctx.BlockHeader()
	header.Time = header.Time.Add(20 * time.Second)
	suite.ctx = suite.ctx.WithBlockHeader(header)
	suite.keeper.EndBlocker(suite.ctx)

	_, found = suite.keeper.GetLimitOrderTranche(suite.ctx, key)
	suite.Require().False(found)
	_, found = suite.keeper.GetInactiveLimitOrderTranche(suite.ctx, key)
	suite.Require().True(found)

	_, err = keeper.NewMsgServerImpl(suite.keeper).CancelLimitOrder(suite.ctx, types.MsgCancelLimitOrder{Creator: suite.alice, TrancheKey: res.TrancheKey})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1000), suite.balance(suite.alice, "uatom"))
}

func (suite *KeeperTestSuite) TestJITLimitPerBlock() {
	params := types.DefaultParams()
	params.MaxJitsPerBlock = 1
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, params))

	_, err := suite.placeOrder(types.JUST_IN_TIME, "10", 0, 0)
	suite.Require().NoError(err)
	_, err = suite.placeOrder(types.JUST_IN_TIME, "10", 0, 0)
	suite.Require().ErrorIs(err, types.ErrOverJITPerBlockLimit)

	suite.keeper.EndBlocker(suite.ctx)
	_, err = suite.placeOrder(types.JUST_IN_TIME, "10", 0, 0)
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestTickLiquidityAll() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	_, err := ms.Deposit(suite.ctx, types.MsgDeposit{
		Creator:         suite.alice,
		Receiver:        suite.alice,
		TokenA:          "uatom",
		TokenB:          "untrn",
		AmountsA:        []string{"100"},
		AmountsB:        []string{"0"},
		TickIndexesAToB: []int64{-10},
		Fees:            []uint64{1},
	})
	suite.Require().NoError(err)
	_, err = suite.placeOrder(types.GOOD_TIL_CANCELLED, "10", 5, 0)
	suite.Require().NoError(err)

	res, err := suite.querier.TickLiquidityAll(suite.ctx, &types.QueryAllTickLiquidityRequest{PairId: "uatom<>untrn", TokenIn: "untrn"})
	suite.Require().NoError(err)
	suite.Require().Len(res.TickLiquidity, 2)
	suite.Require().NotNil(res.TickLiquidity[0].LimitOrderTranche)
	suite.Require().Equal(int64(5), res.TickLiquidity[0].TickIndex())
	suite.Require().NotNil(res.TickLiquidity[1].PoolReserves)
	suite.Require().Equal(int64(11), res.TickLiquidity[1].TickIndex())
	suite.Require().Equal("100", res.TickLiquidity[1].PoolReserves.ReservesMakerDenom)

	other, err := suite.querier.TickLiquidityAll(suite.ctx, &types.QueryAllTickLiquidityRequest{PairId: "uatom<>untrn", TokenIn: "uatom"})
	suite.Require().NoError(err)
	suite.Require().Empty(other.TickLiquidity)

	_, err = suite.querier.TickLiquidityAll(suite.ctx, &types.QueryAllTickLiquidityRequest{PairId: "untrn<>uatom", TokenIn: "uatom"})
	suite.Require().ErrorIs(err, types.ErrInvalidPairIDStr)
}

func (suite *KeeperTestSuite) TestPausedAndUpdateParams() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	params := types.DefaultParams()
	params.Paused = true

	_, err := ms.UpdateParams(suite.ctx, types.MsgUpdateParams{Authority: suite.alice, Params: params})
	suite.Require().ErrorIs(err, types.ErrInvalidAuthority)

	_, err = ms.UpdateParams(suite.ctx, types.MsgUpdateParams{Authority: suite.authority, Params: params})
	suite.Require().NoError(err)

	_, err = suite.placeOrder(types.GOOD_TIL_CANCELLED, "10", 0, 0)
	suite.Require().ErrorIs(err, types.ErrDexPaused)
}

func TestTickIndexBytesOrder(t *testing.T) {
	ticks := []int64{-559680, -1, 0, 1, 559680}
	for i := 1; i < len(ticks); i++ {
		require.Less(t, string(types.TickIndexToBytes(ticks[i-1])), string(types.TickIndexToBytes(ticks[i])))
		require.Equal(t, ticks[i], types.BytesToTickIndex(types.TickIndexToBytes(ticks[i])))
	}
}

func TestPairID(t *testing.T) {
	pairID := types.NewPairID("untrn", "uatom")
	require.Equal(t, "uatom<>untrn", pairID.String())

	tradePairID, err := pairID.TradePairIDFromTaker("untrn")
	require.NoError(t, err)
	require.Equal(t, "uatom", tradePairID.MakerDenom)
	require.Equal(t, int64(-3), tradePairID.TickIndexTakerToMaker(3))

	_, err = pairID.TradePairIDFromTaker("uosmo")
	require.ErrorIs(t, err, types.ErrInvalidTradingPair)
}
