package silentpay

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/dchest/blake2b"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
)

const groupOrder = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

// fixedHash ignores its input and always returns digest.
type fixedHash struct {
	digest []byte
}

func (h *fixedHash) Write(p []byte) (int, error) { return len(p), nil }
func (h *fixedHash) Sum(b []byte) []byte { return append(b, h.digest...) }
func (h *fixedHash) Reset() {}
func (h *fixedHash) Size() int { return len(h.digest) }
func (h *fixedHash) BlockSize() int { return 64 }

func fixedSuite(t *testing.T, digest string) Suite {
	buf, err := hex.DecodeString(digest)
	assert.Nil(t, err)
	return Suite{
		Name: "fixed_" + digest,
		New:  func() hash.Hash { return &fixedHash{digest: buf} },
	}
}

func TestReduceToScalarVector(t *testing.T) {
	assert := assert.New(t)

	x := mustPrivateKey(t, vectorRecipientPrivate)
	I := mustPublicKey(t, vectorSenderPublic)
	shared, err := SharedSecret(x, I)
	assert.Nil(err)
	assert.Equal(vectorSharedSecret, hex.EncodeToString(shared.SerializeCompressed()))

	i := mustPrivateKey(t, vectorSenderPrivate)
	other, err := SharedSecret(i, mustPublicKey(t, vectorRecipientPublic))
	assert.Nil(err)
	assert.True(shared.IsEqual(other))

	s, err := DefaultTweaker().ReduceToScalar(shared)
	assert.Nil(err)
	b := s.Bytes()
	assert.Equal("ee74dbf181630ccbd0fea4ee691e197e663bdc094007484878bb339866efe25a", hex.EncodeToString(b[:]))

	s, err = mustTweaker(t, Blake2b256()).ReduceToScalar(shared)
	assert.Nil(err)
	b = s.Bytes()
	assert.Equal("8c9ee6400506289e753d40387ae06f54c50a0eb22486fe3767327c1659ce738d", hex.EncodeToString(b[:]))

	_, err = DefaultTweaker().ReduceToScalar(nil)
	assert.ErrorIs(err, ErrInvalidPoint)
	_, err = DefaultTweaker().ReduceToScalar(new(secp256k1.PublicKey))
	assert.ErrorIs(err, ErrInvalidPoint)
}

func TestReduceRejectsDegenerateDigests(t *testing.T) {
	assert := assert.New(t)

	X := mustPublicKey(t, vectorRecipientPublic)
	I := mustPublicKey(t, vectorSenderPublic)
	x := mustPrivateKey(t, vectorRecipientPrivate)
	i := mustPrivateKey(t, vectorSenderPrivate)

	digests := []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		groupOrder,
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364142",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}
	for _, d := range digests {
		tw := mustTweaker(t, fixedSuite(t, d))
		_, err := tw.ComputeSenderTweak(X, i)
		assert.ErrorIs(err, ErrInvalidScalar, d)
		_, err = tw.ComputeRecipientTweak(x, I)
		assert.ErrorIs(err, ErrInvalidScalar, d)
		_, err = tw.DeriveOutputPrivateKey(x, I)
		assert.ErrorIs(err, ErrInvalidScalar, d)
	}

	// n-1 is the largest accepted digest
	tw := mustTweaker(t, fixedSuite(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"))
	t1, err := tw.ComputeSenderTweak(X, i)
	assert.Nil(err)
	t2, err := tw.ComputeRecipientTweak(x, I)
	assert.Nil(err)
	assert.True(t1.IsEqual(t2))
}

func TestTweakPointAtInfinity(t *testing.T) {
	assert := assert.New(t)

	// x = n-1, so X = -G and X + 1*G is the identity
	var minusOne secp256k1.ModNScalar
	minusOne.SetInt(1).Negate()
	x := secp256k1.NewPrivateKey(&minusOne)
	i := mustPrivateKey(t, vectorSenderPrivate)

	tw := mustTweaker(t, fixedSuite(t, "0000000000000000000000000000000000000000000000000000000000000001"))
	_, err := tw.ComputeSenderTweak(x.PubKey(), i)
	assert.ErrorIs(err, ErrPointAtInfinity)
	_, err = tw.ComputeRecipientTweak(x, i.PubKey())
	assert.ErrorIs(err, ErrPointAtInfinity)
	_, err = tw.DeriveOutputPrivateKey(x, i.PubKey())
	assert.ErrorIs(err, ErrPointAtInfinity)

	// the same keys are fine under a real hash
	t1, err := ComputeSenderTweak(x.PubKey(), i)
	assert.Nil(err)
	t2, err := ComputeRecipientTweak(x, i.PubKey())
	assert.Nil(err)
	assert.True(t1.IsEqual(t2))
}

func TestReduceEncodingMismatch(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTweaker(Suite{Name: "empty"})
	assert.ErrorIs(err, ErrEncodingMismatch)

	wide := mustTweaker(t, Suite{Name: "blake2b512", New: blake2b.New512})
	_, err = wide.ComputeSenderTweak(mustPublicKey(t, vectorRecipientPublic), mustPrivateKey(t, vectorSenderPrivate))
	assert.ErrorIs(err, ErrEncodingMismatch)
	_, err = wide.ComputeRecipientTweak(mustPrivateKey(t, vectorRecipientPrivate), mustPublicKey(t, vectorSenderPublic))
	assert.ErrorIs(err, ErrEncodingMismatch)

	shared := mustPublicKey(t, vectorSharedSecret)
	tw := DefaultTweaker()
	_, err = tw.hashToScalar(shared.SerializeUncompressed())
	assert.ErrorIs(err, ErrEncodingMismatch)
	encoded := shared.SerializeCompressed()
	encoded[0] = secp256k1.PubKeyFormatHybridOdd
	_, err = tw.hashToScalar(encoded)
	assert.ErrorIs(err, ErrEncodingMismatch)
	encoded[0] = secp256k1.PubKeyFormatCompressedOdd
	_, err = tw.hashToScalar(encoded)
	assert.Nil(err)

	// parity is part of the hash input
	encoded[0] = secp256k1.PubKeyFormatCompressedEven
	even, err := tw.hashToScalar(encoded)
	assert.Nil(err)
	odd, err := tw.ReduceToScalar(shared)
	assert.Nil(err)
	assert.False(even.Equals(odd))
}
