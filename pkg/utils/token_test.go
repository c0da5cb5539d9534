package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOpaqueToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateOpaqueToken()
		require.NoError(t, err)

		// 32 random bytes in unpadded base64url
		assert.Len(t, token, 43)
		assert.NotContains(t, token, "=")
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")

		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}
