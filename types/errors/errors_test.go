package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/okx/testtube/types/errors"
)

func TestRegisterDuplicatePanics(t *testing.T) {
	sdkerrors.Register("errtest", 1, "first")
	require.Panics(t, func() { sdkerrors.Register("errtest", 1, "again") })
}

func TestWrapKeepsIdentity(t *testing.T) {
	err := sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", "5untrn", "9untrn")
	require.True(t, stderrors.Is(err, sdkerrors.ErrInsufficientFunds))
	require.False(t, stderrors.Is(err, sdkerrors.ErrInvalidCoins))
	require.Equal(t, "5untrn is smaller than 9untrn: insufficient funds", err.Error())

	outer := sdkerrors.Wrap(err, "failed to execute message; message index: 0")
	require.True(t, sdkerrors.IsOf(outer, sdkerrors.ErrInvalidCoins, sdkerrors.ErrInsufficientFunds))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, sdkerrors.Wrap(nil, "nothing"))
}

func TestABCIInfo(t *testing.T) {
	codespace, code, log := sdkerrors.ABCIInfo(sdkerrors.ErrUnknownRoute.Wrap("/foo.Bar"))
	require.Equal(t, sdkerrors.RootCodespace, codespace)
	require.Equal(t, uint32(41), code)
	require.Equal(t, "/foo.Bar: unknown route", log)

	codespace, code, _ = sdkerrors.ABCIInfo(stderrors.New("boom"))
	require.Equal(t, sdkerrors.UndefinedCodespace, codespace)
	require.Equal(t, uint32(1), code)

	codespace, code, log = sdkerrors.ABCIInfo(nil)
	require.Empty(t, codespace)
	require.Zero(t, code)
	require.Empty(t, log)
}

func TestLookup(t *testing.T) {
	err, ok := sdkerrors.Lookup(sdkerrors.RootCodespace, 5)
	require.True(t, ok)
	require.Same(t, sdkerrors.ErrInsufficientFunds, err)
}
