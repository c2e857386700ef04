package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazzad098/career-ai-os/internal/auth"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, auth.CheckPassword(hash, "pw123"))
	assert.False(t, auth.CheckPassword(hash, "pw124"))
	assert.False(t, auth.CheckPassword(hash, ""))
	assert.False(t, auth.CheckPassword(hash, "PW123"))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	h2, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
