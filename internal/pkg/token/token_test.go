package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignVerifyRoundtrip(t *testing.T) {
	signed, err := Sign(`{"id":1,"role":"customer"}`, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	payload, err := Verify(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"role":"customer"}`, payload)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := Sign("payload", testSecret)
	require.NoError(t, err)

	_, err = Verify(signed, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	signed, err := Sign("payload", testSecret)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = Verify(tampered, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = Verify("", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
