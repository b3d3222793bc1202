package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	hasher := NewHasher(WithCost(bcrypt.MinCost))

	hashed, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cret-password", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2"))

	assert.True(t, hasher.Verify(hashed, "s3cret-password"))
	assert.False(t, hasher.Verify(hashed, "wrong-password"))
	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "s3cret-password"))
}

func TestHasher_HashUnique(t *testing.T) {
	hasher := NewHasher(WithCost(bcrypt.MinCost))

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// bcrypt 內建隨機鹽，同一組密碼每次雜湊結果不同
	assert.NotEqual(t, first, second)
}
