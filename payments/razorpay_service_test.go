package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signAssertion(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAcceptsValid(t *testing.T) {
	secret := "turf_secret"
	sig := signAssertion(secret, "order_abc", "pay_xyz")

	assert.True(t, VerifySignature("order_abc", "pay_xyz", sig, secret))
}

func TestVerifySignatureRejectsTampered(t *testing.T) {
	secret := "turf_secret"
	sig := signAssertion(secret, "order_abc", "pay_xyz")

	assert.False(t, VerifySignature("order_abc", "pay_other", sig, secret))
	assert.False(t, VerifySignature("order_other", "pay_xyz", sig, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig, "wrong_secret"))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig+"00", secret))
}

func TestVerifySignatureFailsClosed(t *testing.T) {
	secret := "turf_secret"
	sig := signAssertion(secret, "order_abc", "pay_xyz")

	assert.False(t, VerifySignature("", "pay_xyz", sig, secret))
	assert.False(t, VerifySignature("order_abc", "", sig, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "", secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig, ""))
}
