// Package silentpay implements the single-input, single-output silent payment
// tweak over secp256k1.
//
// A sender holding input key i pays a recipient with public key X by deriving
//
//	X' = hash(i*X)*G + X
//
// and the recipient, holding x and seeing I = i*G on chain, recomputes
//
//	X' = hash(x*I)*G + x*G
//
// Both sides agree because i*X = x*I. The shared point is hashed as
// 0x02|parity || x under a Suite, SHA-256 by default, which matches the
// libsecp256k1 ECDH hash. The package performs no I/O, keeps no global state
// and never logs key material.
//
// The hash input carries no domain separation, sender key or output index,
// so it must not be reused for transactions with several outputs to the same
// recipient.
package silentpay
