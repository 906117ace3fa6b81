package silentpay

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ReduceToScalar hashes a shared ECDH point to a scalar.
//
// The point is encoded as 33 bytes, 0x02|parity(y) followed by the big-endian
// x coordinate, which is the input of the libsecp256k1 default ECDH hash. The
// suite digest must be 32 bytes and is read as a big-endian integer. A digest
// of zero or one not less than the group order is rejected, never reduced.
func (tw *Tweaker) ReduceToScalar(shared *secp256k1.PublicKey) (*secp256k1.ModNScalar, error) {
	err := checkPublicKey(shared)
	if err != nil {
		return nil, err
	}
	return tw.hashToScalar(shared.SerializeCompressed())
}

func (tw *Tweaker) reduce(shared *secp256k1.JacobianPoint) (*secp256k1.ModNScalar, error) {
	encoded, err := encodePoint(shared)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(encoded)
	return tw.hashToScalar(encoded)
}

func (tw *Tweaker) hashToScalar(encoded []byte) (*secp256k1.ModNScalar, error) {
	if len(encoded) != secp256k1.PubKeyBytesLenCompressed {
		str := fmt.Sprintf("shared secret encoding is %d bytes, want %d",
			len(encoded), secp256k1.PubKeyBytesLenCompressed)
		return nil, makeError(ErrEncodingMismatch, str)
	}
	switch encoded[0] {
	case secp256k1.PubKeyFormatCompressedEven, secp256k1.PubKeyFormatCompressedOdd:
	default:
		str := fmt.Sprintf("shared secret parity byte is %#02x", encoded[0])
		return nil, makeError(ErrEncodingMismatch, str)
	}

	hash := tw.suite.New()
	hash.Write(encoded)
	digest := hash.Sum(nil)
	defer zeroBytes(digest)
	if len(digest) != 32 {
		str := fmt.Sprintf("suite %s digest is %d bytes, want 32", tw.suite.Name, len(digest))
		return nil, makeError(ErrEncodingMismatch, str)
	}

	var t secp256k1.ModNScalar
	if overflow := t.SetByteSlice(digest); overflow {
		t.Zero()
		return nil, makeError(ErrInvalidScalar, "hashed shared secret is not less than the group order")
	}
	if t.IsZero() {
		return nil, makeError(ErrInvalidScalar, "hashed shared secret is zero")
	}
	return &t, nil
}
