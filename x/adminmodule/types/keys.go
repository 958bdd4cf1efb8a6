package types

import (
	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the adminmodule.
	ModuleName = "adminmodule"

	// StoreKey is the store key of the adminmodule.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of adminmodule query routes.
	QueryPath = "/cosmos.adminmodule.adminmodule.Query/"

	TypeURLMsgAddAdmin       = "/cosmos.adminmodule.adminmodule.MsgAddAdmin"
	TypeURLMsgDeleteAdmin    = "/cosmos.adminmodule.adminmodule.MsgDeleteAdmin"
	TypeURLMsgSubmitProposal = "/cosmos.adminmodule.adminmodule.MsgSubmitProposal"
)

var (
	AdminKeyPrefix            = []byte{0x01}
	ProposalIDKey             = []byte{0x02}
	ArchivedProposalKeyPrefix = []byte{0x03}
)

func AdminKey(addr string) []byte {
	return append(append([]byte{}, AdminKeyPrefix...), []byte(addr)...)
}

func ArchivedProposalKey(id uint64) []byte {
	return append(append([]byte{}, ArchivedProposalKeyPrefix...), sdk.Uint64ToBigEndian(id)...)
}
