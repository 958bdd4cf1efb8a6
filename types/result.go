package types

import (
	"github.com/okx/testtube/codec"
)

// GasInfo reports the gas requested by a tx and the gas it consumed.
type GasInfo struct {
	GasWanted uint64 `json:"gas_wanted"`
	GasUsed   uint64 `json:"gas_used"`
}

// Result is what a message handler returns.
type Result struct {
	Data   []byte `json:"data"`
	Log    string `json:"log"`
	Events Events `json:"events"`
}

// TxMsgData carries one typed response per executed message, in message
// order. It is the Data of a successful TxResult.
type TxMsgData struct {
	MsgResponses []codec.Any `json:"msg_responses"`
}

// TxResult is the outcome of delivering one tx. A zero Code means every
// message executed.
type TxResult struct {
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace,omitempty"`
	Log       string `json:"log"`
	Data      []byte `json:"data"`
	GasWanted uint64 `json:"gas_wanted"`
	GasUsed   uint64 `json:"gas_used"`
	Events    Events `json:"events"`
}

// IsOK reports whether the tx executed successfully.
func (r TxResult) IsOK() bool { return r.Code == 0 }

// GasInfo returns the gas part of the result.
func (r TxResult) GasInfo() GasInfo {
	return GasInfo{GasWanted: r.GasWanted, GasUsed: r.GasUsed}
}
