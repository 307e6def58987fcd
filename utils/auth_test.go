package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", ""))
}

func TestRealtimeTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	subject := uuid.New()
	token, err := GenerateRealtimeToken(RoleCustomer, subject)
	require.NoError(t, err)

	role, parsed, err := ParseRealtimeToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)
	assert.Equal(t, subject, parsed)
}

func TestRealtimeTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := ParseRealtimeToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret.
	token, err := GenerateRealtimeToken(RoleAdmin, uuid.New())
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, _, err = ParseRealtimeToken(token)
	assert.Error(t, err)
}

func TestGenerateRealtimeTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateRealtimeToken(RoleAdmin, uuid.New())
	assert.Error(t, err)
}
