package auth

import (
	"testing"

	"dentalai_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-123", "dentist")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "dentist", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, 60)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, 60)
	token, err := GenerateToken("user-123", "dentist")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setTestConfig(t, -1) // already expired on issue

	token, err := GenerateToken("user-123", "dentist")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}

func TestRolePermissions(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleDentist))
	assert.NoError(t, ValidateRole(RoleAssistant))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.Error(t, ValidateRole("hygienist"))

	dentist := &Claims{UserID: "u1", Role: RoleDentist}
	assistant := &Claims{UserID: "u2", Role: RoleAssistant}

	assert.True(t, CanSignNotes(dentist))
	assert.False(t, CanSignNotes(assistant))
	assert.False(t, IsAdmin(dentist))
	assert.True(t, HasPermission(RoleAssistant, "appointments:write"))
	assert.False(t, HasPermission(RoleAssistant, "notes:write"))
}
