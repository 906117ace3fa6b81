package silentpay

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ComputeRecipientTweak recomputes the output key on the recipient side from
// the recipient private key and the sender input public key:
// X' = hash(x*I)*G + x*G. It equals ComputeSenderTweak(x*G, i) whenever I = i*G.
func (tw *Tweaker) ComputeRecipientTweak(recipientKey *secp256k1.PrivateKey, sender *secp256k1.PublicKey) (*secp256k1.PublicKey, error) {
	err := checkPrivateKey(recipientKey)
	if err != nil {
		return nil, err
	}
	err = checkPublicKey(sender)
	if err != nil {
		return nil, err
	}

	var x secp256k1.ModNScalar
	x.Set(&recipientKey.Key)
	defer x.Zero()

	// x*G
	var X, I, shared secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&x, &X)
	sender.AsJacobian(&I)

	// x*I
	secp256k1.ScalarMultNonConst(&x, &I, &shared)
	defer zeroPoint(&shared)

	// hash(x*I)
	t, err := tw.reduce(&shared)
	if err != nil {
		return nil, err
	}
	defer t.Zero()

	// hash(x*I)*G + X
	return addBaseMult(&X, t)
}

// ComputeRecipientTweak runs the recipient side with the SHA256ECDH suite.
func ComputeRecipientTweak(recipientKey *secp256k1.PrivateKey, sender *secp256k1.PublicKey) (*secp256k1.PublicKey, error) {
	return DefaultTweaker().ComputeRecipientTweak(recipientKey, sender)
}
