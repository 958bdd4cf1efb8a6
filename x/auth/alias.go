package auth

import (
	"github.com/okx/testtube/x/auth/keeper"
	"github.com/okx/testtube/x/auth/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	FeeCollectorName = types.FeeCollectorName
	Minter           = types.Minter
	Burner           = types.Burner
)

var (
	NewAccountKeeper = keeper.NewAccountKeeper
	DefaultParams    = types.DefaultParams
)

type (
	AccountKeeper = keeper.AccountKeeper
	BaseAccount   = types.BaseAccount
	ModuleAccount = types.ModuleAccount
)
