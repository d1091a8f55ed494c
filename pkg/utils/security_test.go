package utils

import (
	"os"
	"path/filepath"
	"testing"

	"btube-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
	assert.False(t, VerifyPassword("s3cret-pass", "not-a-hash"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func loadTestConfig(t *testing.T) {
	t.Helper()
	yaml := `
app:
  name: "btube-test"
jwt:
  secret: "unit-test-secret"
  expire_hours: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "btube-test", claims.Issuer)
}

func TestParseTokenInvalid(t *testing.T) {
	loadTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// 换密钥签出的 Token 不被接受
	token, err := GenerateToken(7)
	require.NoError(t, err)

	yaml := `
app:
  name: "btube-test"
jwt:
  secret: "a-different-secret"
  expire_hours: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	_, err = config.Load(path)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
