package contractmanager

import (
	"github.com/okx/testtube/x/contractmanager/keeper"
	"github.com/okx/testtube/x/contractmanager/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper     = keeper.NewKeeper
	DefaultParams = types.DefaultParams
)

type Keeper = keeper.Keeper
