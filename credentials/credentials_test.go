package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caredirectory/go-admin-auth/credentials"
)

func TestCompare(t *testing.T) {
	t.Run("equal strings match", func(t *testing.T) {
		require.True(t, credentials.Compare("s3cret-admin-key", "s3cret-admin-key"))
	})

	t.Run("equal length mismatch", func(t *testing.T) {
		require.False(t, credentials.Compare("s3cret-admin-kex", "s3cret-admin-key"))
		require.False(t, credentials.Compare("x3cret-admin-key", "s3cret-admin-key"))
	})

	t.Run("length mismatch", func(t *testing.T) {
		require.False(t, credentials.Compare("s3cret", "s3cret-admin-key"))
		require.False(t, credentials.Compare("s3cret-admin-key-long", "s3cret-admin-key"))
	})

	t.Run("empty strings are equal", func(t *testing.T) {
		require.True(t, credentials.Compare("", ""))
	})

	t.Run("empty against non-empty", func(t *testing.T) {
		require.False(t, credentials.Compare("", "s3cret"))
		require.False(t, credentials.Compare("s3cret", ""))
	})
}

func TestCompareHash(t *testing.T) {
	hash, err := credentials.HashKey("s3cret-admin-key")
	require.NoError(t, err)

	t.Run("correct key matches its hash", func(t *testing.T) {
		require.True(t, credentials.CompareHash("s3cret-admin-key", hash))
	})

	t.Run("wrong key does not match", func(t *testing.T) {
		require.False(t, credentials.CompareHash("wrong-key", hash))
	})

	t.Run("garbage hash never matches", func(t *testing.T) {
		require.False(t, credentials.CompareHash("s3cret-admin-key", "not-a-bcrypt-hash"))
	})
}
