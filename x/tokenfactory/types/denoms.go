package types

import (
	"strings"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

const (
	ModuleDenomPrefix = "factory"
	// MaxSubdenomLength bounds subdenoms so that full denoms fit the
	// 128 byte denom limit.
	MaxSubdenomLength = 44
	MaxHrpLength      = 16
	// MaxCreatorLength is the length of a bech32 address with the longest
	// prefix and a 32 byte payload.
	MaxCreatorLength  = 59 + MaxHrpLength
)

// GetTokenDenom builds the denom "factory/{creator}/{subdenom}".
func GetTokenDenom(creator, subdenom string) (string, error) {
	if len(subdenom) > MaxSubdenomLength {
		return "", ErrSubdenomTooLong
	}
	if len(creator) > MaxCreatorLength {
		return "", ErrCreatorTooLong
	}
	if strings.Contains(creator, "/") {
		return "", ErrInvalidCreator
	}
	denom := strings.Join([]string{ModuleDenomPrefix, creator, subdenom}, "/")
	return denom, sdk.ValidateDenom(denom)
}

// DeconstructDenom splits a tokenfactory denom into its creator and
// subdenom.
func DeconstructDenom(denom string) (creator string, subdenom string, err error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", "", err
	}
	parts := strings.Split(denom, "/")
	if len(parts) < 3 {
		return "", "", sdkerrors.Wrapf(ErrInvalidDenom, "not enough parts of denom %s", denom)
	}
	if parts[0] != ModuleDenomPrefix {
		return "", "", sdkerrors.Wrapf(ErrInvalidDenom, "denom prefix is incorrect. Is: %s.  Should be: %s", parts[0], ModuleDenomPrefix)
	}
	creator = parts[1]
	if err := sdk.ValidateAddress(creator); err != nil {
		return "", "", sdkerrors.Wrapf(ErrInvalidDenom, "Invalid creator address (%s)", err)
	}
	// Subdenoms may contain slashes.
	subdenom = strings.Join(parts[2:], "/")
	return creator, subdenom, nil
}
