package account

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"

	"github.com/okx/testtube/types"
)

// Account is anything with an on-chain address.
type Account interface {
	Address() string
}

// NonSigningAccount references an address without key material.
type NonSigningAccount struct {
	address string
}

// NewNonSigningAccount wraps addr.
func NewNonSigningAccount(addr string) NonSigningAccount {
	return NonSigningAccount{address: addr}
}

func (a NonSigningAccount) Address() string { return a.address }

// SigningAccount holds a secp256k1 key, the derived address, a fee
// setting and the client side view of the account sequence.
//
// Sequence is the next sequence the chain expects. Submitted counts txs
// that were included in a block and consumed a sequence slot, whether or
// not their messages executed; Succeeded counts those whose messages
// executed. A SigningAccount is owned by one caller and is not safe for
// concurrent use.
type SigningAccount struct {
	privKey    *btcec.PrivateKey
	address    string
	feeSetting FeeSetting

	sequence  uint64
	submitted uint64
	succeeded uint64
}

var _ Account = (*SigningAccount)(nil)

// NewSigningAccount restores an account from a 32 byte private key.
func NewSigningAccount(prefix string, privKey []byte, fee FeeSetting) (*SigningAccount, error) {
	if len(privKey) != PrivKeySize {
		return nil, errors.Errorf("invalid private key length %d, expected %d", len(privKey), PrivKeySize)
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKey)
	return newSigningAccount(prefix, priv, fee)
}

// GenerateSigningAccount creates an account with a fresh random key.
func GenerateSigningAccount(prefix string, fee FeeSetting) (*SigningAccount, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrap(err, "generate secp256k1 key")
	}
	return newSigningAccount(prefix, priv, fee)
}

func newSigningAccount(prefix string, priv *btcec.PrivateKey, fee FeeSetting) (*SigningAccount, error) {
	addr, err := types.AddressFromPubKey(prefix, priv.PubKey().SerializeCompressed())
	if err != nil {
		return nil, err
	}
	return &SigningAccount{privKey: priv, address: addr, feeSetting: fee}, nil
}

func (a *SigningAccount) Address() string { return a.address }

// PublicKey returns the compressed public key.
func (a *SigningAccount) PublicKey() []byte { return a.privKey.PubKey().SerializeCompressed() }

// PrivateKeyBytes returns the raw 32 byte private key.
func (a *SigningAccount) PrivateKeyBytes() []byte { return a.privKey.Serialize() }

// Sign signs sha256(msg).
func (a *SigningAccount) Sign(msg []byte) ([]byte, error) {
	return signBytes(a.privKey, msg)
}

func (a *SigningAccount) FeeSetting() FeeSetting { return a.feeSetting }

// WithFeeSetting replaces the fee setting and returns a for chaining.
func (a *SigningAccount) WithFeeSetting(fee FeeSetting) *SigningAccount {
	a.feeSetting = fee
	return a
}

func (a *SigningAccount) Sequence() uint64  { return a.sequence }
func (a *SigningAccount) Submitted() uint64 { return a.submitted }
func (a *SigningAccount) Succeeded() uint64 { return a.succeeded }

// SetSequence aligns the local sequence with the chain before signing.
func (a *SigningAccount) SetSequence(seq uint64) { a.sequence = seq }

// RecordSubmission records a tx that was included in a block. next is the
// sequence the chain expects afterwards; succeeded reports whether the
// messages executed. A reverted tx still consumes its sequence slot.
func (a *SigningAccount) RecordSubmission(next uint64, succeeded bool) {
	a.sequence = next
	a.submitted++
	if succeeded {
		a.succeeded++
	}
}
