package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	payload := Payload{ID: "abc123", Email: "jane@example.com", Verified: true}

	signature, err := GenerateSignature(payload, "test-secret")
	require.NoError(t, err)

	got, err := ParseSignature(signature, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestParseSignatureWrongSecret(t *testing.T) {
	signature, err := GenerateSignature(Payload{ID: "abc123"}, "test-secret")
	require.NoError(t, err)

	_, err = ParseSignature(signature, "other-secret")
	assert.Error(t, err)
}

func TestParseSignatureGarbage(t *testing.T) {
	_, err := ParseSignature("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestGenerateOTP(t *testing.T) {
	otp, expiry := GenerateOTP()
	assert.GreaterOrEqual(t, otp, 10000)
	assert.LessOrEqual(t, otp, 99999)
	assert.True(t, expiry.After(time.Now()))
}
