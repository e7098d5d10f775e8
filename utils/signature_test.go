package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignatureMatchesReferenceDigest(t *testing.T) {
	// reference digest computed independently:
	// HMAC-SHA256("order_MknGLV4A1Z8nW6|pay_MknH7C2c8jqQ0A", "test_secret_key")
	got := ComputeSignature("order_MknGLV4A1Z8nW6", "pay_MknH7C2c8jqQ0A", "test_secret_key")
	assert.Equal(t, "241e3f8213977549ad555fe346e8622d64e0194ce9c2197346a888b39f7b3517", got)

	got = ComputeSignature("order_abc", "pay_xyz", "secret")
	assert.Equal(t, "6c4490ce5c4839b0437f2b5dccb1fc7301518f94c6d1165b96d0903bfd33b2ae", got)
}

func TestVerifySignature(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "secret")
	assert.True(t, VerifySignature("order_abc", "pay_xyz", "secret", sig))
}

func TestVerifySignatureRejectsAnySingleCharMutation(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "secret")

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		assert.False(t, VerifySignature("order_abc", "pay_xyz", "secret", string(mutated)),
			"mutation at index %d must fail verification", i)
	}
}

func TestVerifySignatureRejectsWrongSecretAndTruncation(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "secret")
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "other-secret", sig))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "secret", sig[:len(sig)-1]))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "secret", ""))
}
