package types

import (
	"github.com/okx/testtube/codec"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// Fee is what the signer pays for a tx and the gas it may consume.
type Fee struct {
	Amount   Coins  `json:"amount"`
	GasLimit uint64 `json:"gas_limit"`
}

// AuthInfo carries the signer data of a tx.
type AuthInfo struct {
	PubKey   []byte `json:"pub_key"`
	Sequence uint64 `json:"sequence"`
	Fee      Fee    `json:"fee"`
}

// TxBody is the ordered list of messages of a tx.
type TxBody struct {
	Messages []codec.Any `json:"messages"`
	Memo     string      `json:"memo"`
}

// Tx is a single-signer transaction.
type Tx struct {
	Body      TxBody   `json:"body"`
	AuthInfo  AuthInfo `json:"auth_info"`
	Signature []byte   `json:"signature"`
}

// SignDoc is the document a signer commits to.
type SignDoc struct {
	BodyBytes     []byte `json:"body_bytes"`
	AuthInfoBytes []byte `json:"auth_info_bytes"`
	ChainID       string `json:"chain_id"`
	AccountNumber uint64 `json:"account_number"`
}

// SignBytes returns the bytes to sign for tx on chainID by the account
// with the given number.
func (tx Tx) SignBytes(chainID string, accountNumber uint64) ([]byte, error) {
	body, err := codec.Marshal(tx.Body)
	if err != nil {
		return nil, err
	}
	authInfo, err := codec.Marshal(tx.AuthInfo)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(SignDoc{
		BodyBytes:     body,
		AuthInfoBytes: authInfo,
		ChainID:       chainID,
		AccountNumber: accountNumber,
	})
}

// EncodeTx serializes tx for delivery.
func EncodeTx(tx Tx) ([]byte, error) {
	return codec.Marshal(tx)
}

// DecodeTx parses delivered tx bytes.
func DecodeTx(bz []byte) (Tx, error) {
	var tx Tx
	if len(bz) == 0 {
		return tx, sdkerrors.Wrap(sdkerrors.ErrTxDecode, "tx bytes are empty")
	}
	if err := codec.Unmarshal(bz, &tx); err != nil {
		return tx, sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
	}
	if len(tx.Body.Messages) == 0 {
		return tx, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "must contain at least one message")
	}
	return tx, nil
}
