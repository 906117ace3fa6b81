package silentpay

import (
	"hash"

	"github.com/dchest/blake2b"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

const (
	SUITE_SHA256_ECDH = "secp256k1_ecdh_sha256"
	SUITE_BLAKE2B_256 = "secp256k1_ecdh_blake2b256"
	SUITE_KECCAK_256  = "secp256k1_ecdh_keccak256"
)

// Suite pins the hash applied to the encoded shared secret. Both parties must
// use the same Suite, otherwise they derive unrelated output keys.
type Suite struct {
	Name string
	New  func() hash.Hash
}

// SHA256ECDH hashes like the libsecp256k1 default ECDH function:
// sha256(0x02|parity || x).
func SHA256ECDH() Suite {
	return Suite{Name: SUITE_SHA256_ECDH, New: sha256.New}
}

// Blake2b256 hashes the encoded shared secret with unkeyed BLAKE2b-256.
func Blake2b256() Suite {
	return Suite{Name: SUITE_BLAKE2B_256, New: blake2b.New256}
}

// Keccak256 hashes the encoded shared secret with legacy Keccak-256.
func Keccak256() Suite {
	return Suite{Name: SUITE_KECCAK_256, New: sha3.NewLegacyKeccak256}
}
