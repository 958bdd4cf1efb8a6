package adminmodule

import (
	"github.com/okx/testtube/x/adminmodule/keeper"
	"github.com/okx/testtube/x/adminmodule/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var NewKeeper = keeper.NewKeeper

type (
	Keeper            = keeper.Keeper
	MsgSubmitProposal = types.MsgSubmitProposal
)
