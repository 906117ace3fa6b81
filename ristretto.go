package silentpay

import (
	"bytes"
	"fmt"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

const RISTRETTO_TWEAK_DOMAIN_TAG = "sp_ristretto_tweak_hash_to_scalar"

// l = 2^252 + 27742317777372353535851937790883648493, little-endian
var ristrettoOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// ComputeRistrettoSenderTweak is ComputeSenderTweak over Ristretto255:
// X' = Hs(i*X)*G + X with Hs = blake2b-512(tag || i*X) mod l.
func ComputeRistrettoSenderTweak(recipient *ristretto.Point, senderKey *ristretto.Scalar) (*ristretto.Point, error) {
	err := checkRistrettoPoint(recipient)
	if err != nil {
		return nil, err
	}
	err = checkRistrettoScalar(senderKey)
	if err != nil {
		return nil, err
	}

	var i ristretto.Scalar
	i.Add(&i, senderKey)
	defer i.SetZero()

	var shared ristretto.Point
	shared.ScalarMult(recipient, &i)
	defer shared.SetZero()

	hs, err := ristrettoHashToScalar(&shared)
	if err != nil {
		return nil, err
	}
	defer hs.SetZero()

	var r1, r ristretto.Point
	r.Add(r1.ScalarMultBase(hs), recipient)
	if isRistrettoIdentity(&r) {
		return nil, makeError(ErrPointAtInfinity, "tweaked public key is the identity")
	}
	return &r, nil
}

// ComputeRistrettoRecipientTweak is ComputeRecipientTweak over Ristretto255:
// X' = Hs(x*I)*G + x*G.
func ComputeRistrettoRecipientTweak(recipientKey *ristretto.Scalar, sender *ristretto.Point) (*ristretto.Point, error) {
	err := checkRistrettoScalar(recipientKey)
	if err != nil {
		return nil, err
	}
	err = checkRistrettoPoint(sender)
	if err != nil {
		return nil, err
	}

	var x ristretto.Scalar
	x.Add(&x, recipientKey)
	defer x.SetZero()

	var X, shared ristretto.Point
	X.ScalarMultBase(&x)
	shared.ScalarMult(sender, &x)
	defer shared.SetZero()

	hs, err := ristrettoHashToScalar(&shared)
	if err != nil {
		return nil, err
	}
	defer hs.SetZero()

	var r1, r ristretto.Point
	r.Add(r1.ScalarMultBase(hs), &X)
	if isRistrettoIdentity(&r) {
		return nil, makeError(ErrPointAtInfinity, "tweaked public key is the identity")
	}
	return &r, nil
}

// ParseRistrettoPoint decodes a 32-byte canonical Ristretto255 encoding,
// rejecting the identity.
func ParseRistrettoPoint(b []byte) (*ristretto.Point, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("ristretto point is %d bytes, want 32", len(b))
		return nil, makeError(ErrInvalidPoint, str)
	}
	var buf [32]byte
	copy(buf[:], b)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, makeError(ErrInvalidPoint, "ristretto point does not decode")
	}
	err := checkRistrettoPoint(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseRistrettoScalar decodes a 32-byte little-endian scalar in [1, l-1].
func ParseRistrettoScalar(b []byte) (*ristretto.Scalar, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("ristretto scalar is %d bytes, want 32", len(b))
		return nil, makeError(ErrInvalidScalar, str)
	}
	if !isCanonicalRistrettoScalar(b) {
		return nil, makeError(ErrInvalidScalar, "ristretto scalar is not less than the group order")
	}
	var buf [32]byte
	defer zeroBytes(buf[:])
	copy(buf[:], b)
	var s ristretto.Scalar
	s.SetBytes(&buf)
	err := checkRistrettoScalar(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ristrettoHashToScalar is Hs(tag || shared), a 64-byte BLAKE2b digest
// reduced mod l. Only a zero result is rejected.
func ristrettoHashToScalar(shared *ristretto.Point) (*ristretto.Scalar, error) {
	hash := blake2b.New512()
	hash.Write([]byte(RISTRETTO_TWEAK_DOMAIN_TAG))
	hash.Write(shared.Bytes())
	digest := hash.Sum(nil)
	defer zeroBytes(digest)
	return ristrettoScalarFromWide(digest)
}

func ristrettoScalarFromWide(digest []byte) (*ristretto.Scalar, error) {
	var key [64]byte
	defer zeroBytes(key[:])
	copy(key[:], digest)

	var hs ristretto.Scalar
	hs.SetReduced(&key)
	err := checkRistrettoScalar(&hs)
	if err != nil {
		return nil, err
	}
	return &hs, nil
}

// isCanonicalRistrettoScalar compares a little-endian scalar against l.
func isCanonicalRistrettoScalar(b []byte) bool {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != ristrettoOrder[i] {
			return b[i] < ristrettoOrder[i]
		}
	}
	return false
}

func checkRistrettoPoint(p *ristretto.Point) error {
	if p == nil {
		return makeError(ErrInvalidPoint, "ristretto point is nil")
	}
	if isRistrettoIdentity(p) {
		return makeError(ErrInvalidPoint, "ristretto point is the identity")
	}
	return nil
}

func checkRistrettoScalar(s *ristretto.Scalar) error {
	if s == nil {
		return makeError(ErrInvalidScalar, "ristretto scalar is nil")
	}
	var zero [32]byte
	if bytes.Equal(s.Bytes(), zero[:]) {
		return makeError(ErrInvalidScalar, "ristretto scalar is zero")
	}
	return nil
}

func isRistrettoIdentity(p *ristretto.Point) bool {
	var zero [32]byte
	return bytes.Equal(p.Bytes(), zero[:])
}
