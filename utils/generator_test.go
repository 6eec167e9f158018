package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingID(t *testing.T) {
	id := GenerateBookingID()

	assert.True(t, strings.HasPrefix(id, "BK"))
	assert.Greater(t, len(id), 2+bookingSuffixLength)

	for _, r := range id[2:] {
		assert.Contains(t, letterBytes, string(r))
	}
}

func TestGenerateResetToken(t *testing.T) {
	token, hashed, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.NotEqual(t, token, hashed)
	assert.Equal(t, hashed, HashResetToken(token))

	token2, _, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}
