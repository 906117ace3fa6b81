package silentpay

import (
	"encoding/hex"
)

// TweakPaymentAddress is the sender side over hex strings: a compressed or
// uncompressed recipient public key and a 32-byte sender input private key.
// It returns the compressed output public key.
func TweakPaymentAddress(recipientPublic, senderPrivate string) (string, error) {
	recipient, err := hexToPublicKey(recipientPublic)
	if err != nil {
		return "", err
	}
	sender, err := hexToPrivateKey(senderPrivate)
	if err != nil {
		return "", err
	}
	defer sender.Zero()

	output, err := ComputeSenderTweak(recipient, sender)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(output.SerializeCompressed()), nil
}

// DetectPayment is the recipient side over hex strings. The result is
// compared against the output keys seen on chain.
func DetectPayment(recipientPrivate, senderPublic string) (string, error) {
	recipient, err := hexToPrivateKey(recipientPrivate)
	if err != nil {
		return "", err
	}
	defer recipient.Zero()
	sender, err := hexToPublicKey(senderPublic)
	if err != nil {
		return "", err
	}

	output, err := ComputeRecipientTweak(recipient, sender)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(output.SerializeCompressed()), nil
}
