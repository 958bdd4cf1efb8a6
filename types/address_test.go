package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okx/testtube/types"
)

func TestBech32RoundTrip(t *testing.T) {
	bz := make([]byte, types.AddrLen)
	for i := range bz {
		bz[i] = byte(i)
	}
	addr, err := types.Bech32FromBytes("neutron", bz)
	require.NoError(t, err)
	require.NoError(t, types.ValidateAddress(addr))

	hrp, decoded, err := types.BytesFromBech32(addr)
	require.NoError(t, err)
	require.Equal(t, "neutron", hrp)
	require.Equal(t, bz, decoded)
}

func TestValidateAddress(t *testing.T) {
	require.Error(t, types.ValidateAddress(""))
	require.Error(t, types.ValidateAddress("neutron1notbech32"))

	short, err := types.Bech32FromBytes("neutron", []byte{1, 2, 3})
	require.NoError(t, err)
	require.Error(t, types.ValidateAddress(short))
}

func TestModuleAddressIsStable(t *testing.T) {
	gov := types.ModuleAddress("neutron", "gov")
	require.Equal(t, gov, types.ModuleAddress("neutron", "gov"))
	require.NotEqual(t, gov, types.ModuleAddress("neutron", "bank"))
	require.NoError(t, types.ValidateAddress(gov))
}
