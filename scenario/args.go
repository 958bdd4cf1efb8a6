package scenario

import (
	"strconv"

	sdk "github.com/okx/testtube/types"
)

// Args are the arguments of a step after account references were
// resolved.
type Args map[string]string

func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == "" {
		return "", ErrMissingArg.Wrapf("%s", key)
	}
	return v, nil
}

func (a Args) Optional(key, def string) string {
	if v, ok := a[key]; ok && v != "" {
		return v
	}
	return def
}

func (a Args) Int64(key string) (int64, error) {
	v, err := a.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, ErrInvalidArg.Wrapf("%s: %s", key, err)
	}
	return n, nil
}

func (a Args) Uint64(key string) (uint64, error) {
	v, err := a.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, ErrInvalidArg.Wrapf("%s: %s", key, err)
	}
	return n, nil
}

func (a Args) Coin(key string) (sdk.Coin, error) {
	v, err := a.String(key)
	if err != nil {
		return sdk.Coin{}, err
	}
	coin, err := sdk.ParseCoin(v)
	if err != nil {
		return sdk.Coin{}, ErrInvalidArg.Wrapf("%s: %s", key, err)
	}
	return coin, nil
}

// Coins parses a comma separated coin list. A missing key is an empty
// list.
func (a Args) Coins(key string) (sdk.Coins, error) {
	coins, err := sdk.ParseCoins(a.Optional(key, ""))
	if err != nil {
		return nil, ErrInvalidArg.Wrapf("%s: %s", key, err)
	}
	return coins, nil
}
