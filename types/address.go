package types

import (
	"crypto/sha256"

	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/bech32"

	sdkerrors "github.com/okx/testtube/types/errors"
)

// AddrLen is the byte length of account addresses.
const AddrLen = 20

// Bech32FromBytes encodes address bytes under the human readable prefix.
func Bech32FromBytes(prefix string, bz []byte) (string, error) {
	conv, err := bech32.ConvertBits(bz, 8, 5, true)
	if err != nil {
		return "", sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	addr, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	return addr, nil
}

// MustBech32FromBytes panics when encoding fails.
func MustBech32FromBytes(prefix string, bz []byte) string {
	addr, err := Bech32FromBytes(prefix, bz)
	if err != nil {
		panic(err)
	}
	return addr
}

// BytesFromBech32 decodes addr and returns its prefix and bytes.
func BytesFromBech32(addr string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "%s: %s", addr, err)
	}
	bz, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "%s: %s", addr, err)
	}
	return hrp, bz, nil
}

// ValidateAddress checks addr is a bech32 encoded 20 byte address.
func ValidateAddress(addr string) error {
	if addr == "" {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "empty address string is not allowed")
	}
	_, bz, err := BytesFromBech32(addr)
	if err != nil {
		return err
	}
	if len(bz) != AddrLen {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "%s: expected %d bytes, got %d", addr, AddrLen, len(bz))
	}
	return nil
}

// AddressFromPubKey derives the account address of a compressed
// secp256k1 public key: RIPEMD160(SHA256(pubkey)).
func AddressFromPubKey(prefix string, pubKey []byte) (string, error) {
	return Bech32FromBytes(prefix, btcutil.Hash160(pubKey))
}

// ModuleAddress derives the address of a module account from its name.
func ModuleAddress(prefix, name string) string {
	sum := sha256.Sum256([]byte(name))
	return MustBech32FromBytes(prefix, sum[:AddrLen])
}
