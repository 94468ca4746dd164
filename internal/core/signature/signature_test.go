package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test_key_secret"

func mutate(s string, i int) string {
	b := []byte(s)
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}

func TestSign_MatchesHMACSHA256(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("order_ABC|pay_XYZ"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, Sign("order_ABC", "pay_XYZ", testSecret))
	assert.Len(t, want, 64)
}

func TestVerify_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"order_ABC", "pay_XYZ"},
		{"order_NzY1MjQ1", "pay_MTIzNDU2"},
		{"", ""},
	}
	for _, p := range pairs {
		sig := Sign(p[0], p[1], testSecret)
		assert.True(t, Verify(p[0], p[1], sig, testSecret), "%v", p)
	}
}

func TestVerify_SingleCharacterMutations(t *testing.T) {
	orderID, paymentID := "order_ABC", "pay_XYZ"
	sig := Sign(orderID, paymentID, testSecret)

	t.Run("signature", func(t *testing.T) {
		for i := range sig {
			assert.False(t, Verify(orderID, paymentID, mutate(sig, i), testSecret), "position %d", i)
		}
	})

	t.Run("order id", func(t *testing.T) {
		for i := range orderID {
			assert.False(t, Verify(mutate(orderID, i), paymentID, sig, testSecret), "position %d", i)
		}
	})

	t.Run("payment id", func(t *testing.T) {
		for i := range paymentID {
			assert.False(t, Verify(orderID, mutate(paymentID, i), sig, testSecret), "position %d", i)
		}
	})
}

func TestVerify_Deterministic(t *testing.T) {
	sig := Sign("order_ABC", "pay_XYZ", testSecret)
	for i := 0; i < 5; i++ {
		assert.Equal(t, sig, Sign("order_ABC", "pay_XYZ", testSecret))
		assert.True(t, Verify("order_ABC", "pay_XYZ", sig, testSecret))
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	sig := Sign("order_ABC", "pay_XYZ", "some_other_secret")
	assert.False(t, Verify("order_ABC", "pay_XYZ", sig, testSecret))
}

func TestVerify_SwappedIDs(t *testing.T) {
	sig := Sign("order_ABC", "pay_XYZ", testSecret)
	assert.False(t, Verify("pay_XYZ", "order_ABC", sig, testSecret))
}

func TestVerify_MalformedSignature(t *testing.T) {
	assert.False(t, Verify("order_ABC", "pay_XYZ", "", testSecret))
	assert.False(t, Verify("order_ABC", "pay_XYZ", "not-hex", testSecret))
}
