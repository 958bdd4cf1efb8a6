package account

import (
	"crypto/sha256"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

const (
	// PrivKeySize is the byte length of a serialized private key.
	PrivKeySize = 32
	// SignatureSize is the byte length of an R||S signature.
	SignatureSize = 64
)

var secp256k1halfN = new(big.Int).Rsh(btcec.S256().N, 1)

func signBytes(priv *btcec.PrivateKey, msg []byte) ([]byte, error) {
	hash := sha256.Sum256(msg)
	sig, err := priv.Sign(hash[:])
	if err != nil {
		return nil, errors.Wrap(err, "secp256k1 sign")
	}
	return serializeSig(sig), nil
}

// serializeSig returns R||S, each left padded to 32 bytes. Sign already
// normalizes S to the lower half of the curve order.
func serializeSig(sig *btcec.Signature) []byte {
	out := make([]byte, SignatureSize)
	r, s := sig.R.Bytes(), sig.S.Bytes()
	copy(out[32-len(r):32], r)
	copy(out[SignatureSize-len(s):], s)
	return out
}

// VerifySignature checks an R||S signature over sha256(msg) against a
// compressed public key. High-S signatures are rejected.
func VerifySignature(pubKey, msg, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey, btcec.S256())
	if err != nil {
		return false
	}
	signature := &btcec.Signature{
		R: new(big.Int).SetBytes(sig[:32]),
		S: new(big.Int).SetBytes(sig[32:]),
	}
	if signature.S.Cmp(secp256k1halfN) > 0 {
		return false
	}
	hash := sha256.Sum256(msg)
	return signature.Verify(hash[:], pub)
}
