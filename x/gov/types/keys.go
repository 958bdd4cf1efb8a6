package types

import (
	"encoding/binary"
	"time"

	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the gov module.
	ModuleName = "gov"

	// StoreKey is the store key of the gov module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of gov query routes.
	QueryPath = "/cosmos.gov.v1.Query/"

	TypeURLMsgSubmitProposal = "/cosmos.gov.v1.MsgSubmitProposal"
	TypeURLMsgVote           = "/cosmos.gov.v1.MsgVote"
	TypeURLMsgDeposit        = "/cosmos.gov.v1.MsgDeposit"
	TypeURLMsgUpdateParams   = "/cosmos.gov.v1.MsgUpdateParams"

	// ParamsTypeURL identifies gov params in the params registry.
	ParamsTypeURL = "/cosmos.gov.v1.Params"
)

var (
	ProposalsKeyPrefix          = []byte{0x00}
	ActiveProposalQueuePrefix   = []byte{0x01}
	InactiveProposalQueuePrefix = []byte{0x02}
	ProposalIDKey               = []byte{0x03}
	DepositsKeyPrefix           = []byte{0x10}
	VotesKeyPrefix              = []byte{0x20}
	ParamsKey                   = []byte{0x30}
)

func concat(parts ...[]byte) []byte {
	var key []byte
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// ProposalKey is the key of proposal id.
func ProposalKey(id uint64) []byte {
	return concat(ProposalsKeyPrefix, sdk.Uint64ToBigEndian(id))
}

// timeBytes encodes t so that keys sort chronologically.
func timeBytes(t time.Time) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(t.Unix()))
	return bz
}

// ActiveProposalQueueKey orders voting proposals by voting end time.
func ActiveProposalQueueKey(id uint64, endTime time.Time) []byte {
	return concat(ActiveProposalQueuePrefix, timeBytes(endTime), sdk.Uint64ToBigEndian(id))
}

// InactiveProposalQueueKey orders deposit period proposals by deposit end
// time.
func InactiveProposalQueueKey(id uint64, endTime time.Time) []byte {
	return concat(InactiveProposalQueuePrefix, timeBytes(endTime), sdk.Uint64ToBigEndian(id))
}

// QueueEndKey bounds a queue iteration to entries ending at or before t.
func QueueEndKey(prefix []byte, t time.Time) []byte {
	return concat(prefix, timeBytes(t.Add(time.Second)))
}

// SplitQueueKey returns the proposal id of a queue key.
func SplitQueueKey(key []byte) uint64 {
	return sdk.BigEndianToUint64(key[len(key)-8:])
}

// DepositsKey is the prefix of the deposits on proposal id.
func DepositsKey(id uint64) []byte {
	return concat(DepositsKeyPrefix, sdk.Uint64ToBigEndian(id))
}

// DepositKey is the key of the deposit of depositor on proposal id.
func DepositKey(id uint64, depositor string) []byte {
	return concat(DepositsKey(id), []byte(depositor))
}

// VotesKey is the prefix of the votes on proposal id.
func VotesKey(id uint64) []byte {
	return concat(VotesKeyPrefix, sdk.Uint64ToBigEndian(id))
}

// VoteKey is the key of the vote of voter on proposal id.
func VoteKey(id uint64, voter string) []byte {
	return concat(VotesKey(id), []byte(voter))
}
