package staking

import (
	"github.com/okx/testtube/x/staking/keeper"
	"github.com/okx/testtube/x/staking/types"
)

const (
	ModuleName     = types.ModuleName
	StoreKey       = types.StoreKey
	BondedPoolName = types.BondedPoolName
)

var (
	NewKeeper     = keeper.NewKeeper
	DefaultParams = types.DefaultParams
)

type (
	Keeper      = keeper.Keeper
	Validator   = types.Validator
	Description = types.Description
)
