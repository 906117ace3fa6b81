package silentpay

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ComputeSenderTweak tweaks the recipient public key with the sender input
// key: X' = hash(i*X)*G + X.
func (tw *Tweaker) ComputeSenderTweak(recipient *secp256k1.PublicKey, senderKey *secp256k1.PrivateKey) (*secp256k1.PublicKey, error) {
	err := checkPublicKey(recipient)
	if err != nil {
		return nil, err
	}
	err = checkPrivateKey(senderKey)
	if err != nil {
		return nil, err
	}

	var i secp256k1.ModNScalar
	i.Set(&senderKey.Key)
	defer i.Zero()

	var X, shared secp256k1.JacobianPoint
	recipient.AsJacobian(&X)

	// i*X
	secp256k1.ScalarMultNonConst(&i, &X, &shared)
	defer zeroPoint(&shared)

	// hash(i*X)
	t, err := tw.reduce(&shared)
	if err != nil {
		return nil, err
	}
	defer t.Zero()

	// hash(i*X)*G + X
	return addBaseMult(&X, t)
}

// ComputeSenderTweak runs the sender side with the SHA256ECDH suite.
func ComputeSenderTweak(recipient *secp256k1.PublicKey, senderKey *secp256k1.PrivateKey) (*secp256k1.PublicKey, error) {
	return DefaultTweaker().ComputeSenderTweak(recipient, senderKey)
}
