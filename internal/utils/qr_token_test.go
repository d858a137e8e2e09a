package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateQRToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateQRToken()
		require.NoError(t, err)
		require.Len(t, token, 32)
		require.False(t, seen[token], "token collision: %s", token)
		seen[token] = true
	}
}

func TestQRImageURL(t *testing.T) {
	url := QRImageURL("abc123")
	require.True(t, strings.HasPrefix(url, QRImageEndpoint))
	require.Contains(t, url, "data=abc123")
}

func TestQRImageURL_EscapesToken(t *testing.T) {
	url := QRImageURL("a b&c")
	require.NotContains(t, url, "a b&c")
	require.Contains(t, url, "data=a+b%26c")
}
