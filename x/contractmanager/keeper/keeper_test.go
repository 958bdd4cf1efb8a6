package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okx/testtube/testutil"
	"github.com/okx/testtube/x/contractmanager/keeper"
	"github.com/okx/testtube/x/contractmanager/types"
)

const prefix = "neutron"

func TestUpdateParams(t *testing.T) {
	ctx := testutil.DefaultContext()
	gov, admin, alice := testutil.Addr(prefix, "gov"), testutil.Addr(prefix, "admin"), testutil.Addr(prefix, "alice")
	k := keeper.NewKeeper(types.StoreKey, gov, admin)
	ms := keeper.NewMsgServerImpl(k)

	require.Equal(t, types.DefaultSudoCallGasLimit, k.GetParams(ctx).SudoCallGasLimit)

	_, err := ms.UpdateParams(ctx, types.MsgUpdateParams{Authority: alice, Params: types.Params{SudoCallGasLimit: 5}})
	require.ErrorIs(t, err, types.ErrInvalidAuthority)

	_, err = ms.UpdateParams(ctx, types.MsgUpdateParams{Authority: gov, Params: types.Params{SudoCallGasLimit: 5}})
	require.NoError(t, err)
	_, err = ms.UpdateParams(ctx, types.MsgUpdateParams{Authority: admin, Params: types.Params{SudoCallGasLimit: 7}})
	require.NoError(t, err)

	res, err := keeper.NewQuerier(k).Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(7), res.Params.SudoCallGasLimit)

	require.Error(t, types.MsgUpdateParams{Authority: gov}.ValidateBasic())
}

func TestFailures(t *testing.T) {
	ctx := testutil.DefaultContext()
	k := keeper.NewKeeper(types.StoreKey)
	q := keeper.NewQuerier(k)
	contractA, contractB := testutil.Addr(prefix, "contract-a"), testutil.Addr(prefix, "contract-b")

	k.AddContractFailure(ctx, contractA, []byte(`{"a":1}`), "codespace: wasm, code: 5")
	k.AddContractFailure(ctx, contractA, []byte(`{"a":2}`), "out of gas")
	k.AddContractFailure(ctx, contractB, nil, "panic")

	res, err := q.Failures(ctx, &types.QueryFailuresRequest{Address: contractA})
	require.NoError(t, err)
	require.Len(t, res.Failures, 2)
	require.Equal(t, uint64(0), res.Failures[0].Id)
	require.Equal(t, uint64(1), res.Failures[1].Id)
	require.Equal(t, "out of gas", res.Failures[1].Error)

	all, err := q.Failures(ctx, &types.QueryFailuresRequest{})
	require.NoError(t, err)
	require.Len(t, all.Failures, 3)

	one, err := q.AddressFailure(ctx, &types.QueryAddressFailureRequest{Address: contractB, FailureId: 0})
	require.NoError(t, err)
	require.Equal(t, "panic", one.Failure.Error)

	_, err = q.AddressFailure(ctx, &types.QueryAddressFailureRequest{Address: contractB, FailureId: 1})
	require.ErrorIs(t, err, types.ErrNoFailure)

	_, err = q.Failures(ctx, &types.QueryFailuresRequest{Address: "not-an-address"})
	require.Error(t, err)
}
