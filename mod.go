package silentpay

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func checkPublicKey(pub *secp256k1.PublicKey) error {
	if pub == nil {
		return makeError(ErrInvalidPoint, "public key is nil")
	}
	if !pub.IsOnCurve() {
		return makeError(ErrInvalidPoint, "public key is not on the secp256k1 curve")
	}
	return nil
}

func checkPrivateKey(priv *secp256k1.PrivateKey) error {
	if priv == nil {
		return makeError(ErrInvalidScalar, "private key is nil")
	}
	if priv.Key.IsZero() {
		return makeError(ErrInvalidScalar, "private key is zero")
	}
	return nil
}

// isInfinity reports whether p is the identity. p may be unnormalized.
func isInfinity(p *secp256k1.JacobianPoint) bool {
	var x, y, z secp256k1.FieldVal
	z.Set(&p.Z).Normalize()
	if z.IsZero() {
		return true
	}
	x.Set(&p.X).Normalize()
	y.Set(&p.Y).Normalize()
	return x.IsZero() && y.IsZero()
}

// addBaseMult returns base + t*G.
func addBaseMult(base *secp256k1.JacobianPoint, t *secp256k1.ModNScalar) (*secp256k1.PublicKey, error) {
	var tG, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(t, &tG)
	secp256k1.AddNonConst(base, &tG, &sum)
	if isInfinity(&sum) {
		return nil, makeError(ErrPointAtInfinity, "tweaked public key is the point at infinity")
	}
	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y), nil
}

// encodePoint serializes p as 0x02|parity || x, the shared secret encoding.
func encodePoint(p *secp256k1.JacobianPoint) ([]byte, error) {
	if isInfinity(p) {
		return nil, makeError(ErrInvalidPoint, "shared secret is the point at infinity")
	}
	affine := *p
	defer zeroPoint(&affine)
	affine.ToAffine()
	return secp256k1.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed(), nil
}

func zeroPoint(p *secp256k1.JacobianPoint) {
	p.X.Zero()
	p.Y.Zero()
	p.Z.Zero()
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func hexToPrivateKey(h string) (*secp256k1.PrivateKey, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		str := fmt.Sprintf("private key is not hex: %v", err)
		return nil, makeError(ErrInvalidScalar, str)
	}
	defer zeroBytes(buf)
	return ParsePrivateKey(buf)
}

func hexToPublicKey(h string) (*secp256k1.PublicKey, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		str := fmt.Sprintf("public key is not hex: %v", err)
		return nil, makeError(ErrInvalidPoint, str)
	}
	return ParsePublicKey(buf)
}
