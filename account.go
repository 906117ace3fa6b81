package silentpay

import (
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeyPair is a scan/spend key or a transaction input key together with its
// public point.
type KeyPair struct {
	Private *secp256k1.PrivateKey
	Public  *secp256k1.PublicKey
}

// GenerateKeyPair samples a private key from r, retrying on zero or
// out-of-range candidates.
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	var buf [32]byte
	defer zeroBytes(buf[:])
	for {
		_, err := io.ReadFull(r, buf[:])
		if err != nil {
			return nil, err
		}
		private, err := ParsePrivateKey(buf[:])
		if errors.Is(err, ErrInvalidScalar) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &KeyPair{Private: private, Public: private.PubKey()}, nil
	}
}

// Zero wipes the private key.
func (kp *KeyPair) Zero() {
	if kp.Private != nil {
		kp.Private.Zero()
	}
}

// ParsePrivateKey reads a 32-byte big-endian scalar in [1, n-1].
func ParsePrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		str := fmt.Sprintf("private key is %d bytes, want %d", len(b), secp256k1.PrivKeyBytesLen)
		return nil, makeError(ErrInvalidScalar, str)
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow {
		k.Zero()
		return nil, makeError(ErrInvalidScalar, "private key is not less than the group order")
	}
	if k.IsZero() {
		return nil, makeError(ErrInvalidScalar, "private key is zero")
	}
	private := secp256k1.NewPrivateKey(&k)
	k.Zero()
	return private, nil
}

// ParsePublicKey reads a SEC1 compressed, uncompressed or hybrid public key.
// A bad format byte or a hybrid parity that disagrees with y is reported as
// ErrEncodingMismatch, every other defect as ErrInvalidPoint.
func ParsePublicKey(b []byte) (*secp256k1.PublicKey, error) {
	public, err := secp256k1.ParsePubKey(b)
	switch {
	case err == nil:
		return public, nil
	case errors.Is(err, secp256k1.ErrPubKeyInvalidFormat),
		errors.Is(err, secp256k1.ErrPubKeyMismatchedOddness):
		return nil, Error{Err: ErrEncodingMismatch, Description: err.Error()}
	default:
		return nil, Error{Err: ErrInvalidPoint, Description: err.Error()}
	}
}

// PublicKey returns private*G.
func PublicKey(private *secp256k1.PrivateKey) *secp256k1.PublicKey {
	return private.PubKey()
}

// SharedSecret returns the raw ECDH point private*public, before hashing.
func SharedSecret(private *secp256k1.PrivateKey, public *secp256k1.PublicKey) (*secp256k1.PublicKey, error) {
	err := checkPrivateKey(private)
	if err != nil {
		return nil, err
	}
	err = checkPublicKey(public)
	if err != nil {
		return nil, err
	}
	return createSharedSecret(public, &private.Key), nil
}

func createSharedSecret(public *secp256k1.PublicKey, private *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var p, r secp256k1.JacobianPoint
	public.AsJacobian(&p)
	secp256k1.ScalarMultNonConst(private, &p, &r)
	r.ToAffine()
	return secp256k1.NewPublicKey(&r.X, &r.Y)
}
