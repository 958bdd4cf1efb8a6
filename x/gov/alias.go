package gov

import (
	"github.com/okx/testtube/x/gov/keeper"
	"github.com/okx/testtube/x/gov/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper     = keeper.NewKeeper
	DefaultParams = types.DefaultParams
)

type (
	Keeper            = keeper.Keeper
	Proposal          = types.Proposal
	MsgSubmitProposal = types.MsgSubmitProposal
	MsgVote           = types.MsgVote
)
