package silentpay

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// MatchOutput reports whether output is the key a sender with input key
// sender would have derived for the recipient.
func (tw *Tweaker) MatchOutput(recipientKey *secp256k1.PrivateKey, sender, output *secp256k1.PublicKey) (bool, error) {
	err := checkPublicKey(output)
	if err != nil {
		return false, err
	}
	expected, err := tw.ComputeRecipientTweak(recipientKey, sender)
	if err != nil {
		return false, err
	}
	return expected.IsEqual(output), nil
}

// DeriveOutputPrivateKey returns x + hash(x*I) mod n, the private key that
// spends the tweaked output.
func (tw *Tweaker) DeriveOutputPrivateKey(recipientKey *secp256k1.PrivateKey, sender *secp256k1.PublicKey) (*secp256k1.PrivateKey, error) {
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

	var I, shared secp256k1.JacobianPoint
	sender.AsJacobian(&I)
	secp256k1.ScalarMultNonConst(&x, &I, &shared)
	defer zeroPoint(&shared)

	t, err := tw.reduce(&shared)
	if err != nil {
		return nil, err
	}
	defer t.Zero()

	var d secp256k1.ModNScalar
	d.Add2(&x, t)
	if d.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "tweaked private key is zero")
	}
	private := secp256k1.NewPrivateKey(&d)
	d.Zero()
	return private, nil
}
