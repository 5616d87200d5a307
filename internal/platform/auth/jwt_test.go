package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "pricing-test",
		Expiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()
	tenantID := uuid.New()
	roles := []string{RoleAdmin, RoleUnderwriter}

	tokenString, err := svc.GenerateToken(userID, tenantID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "pricing-test", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestGenerateAndValidateToken_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{
		PrivateKeyPEM: string(privPEM),
		Issuer:        "pricing-test",
		Expiration:    15 * time.Minute,
	})
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{
		PublicKeyPEM: string(pubPEM),
		Issuer:       "pricing-test",
	})
	require.NoError(t, err)

	tokenString, err := issuer.GenerateToken(uuid.New(), uuid.New(), []string{RoleAPIClient})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(RoleAPIClient))

	// Validation-only mode must refuse to sign.
	_, err = validator.GenerateToken(uuid.New(), uuid.New(), nil)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "pricing-test",
		Expiration: -1 * time.Hour, // already expired
	})
	require.NoError(t, err)

	tokenString, err := svc.GenerateToken(uuid.New(), uuid.New(), []string{RoleBroker})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	svc1, err := NewJWTService(JWTConfig{Secret: "secret-one", Expiration: 15 * time.Minute})
	require.NoError(t, err)
	svc2, err := NewJWTService(JWTConfig{Secret: "secret-two", Expiration: 15 * time.Minute})
	require.NoError(t, err)

	tokenString, err := svc1.GenerateToken(uuid.New(), uuid.New(), []string{RoleBroker})
	require.NoError(t, err)

	_, err = svc2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{
		Secret:     "shared-secret",
		Issuer:     "someone-else",
		Expiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{
		Secret: "shared-secret",
		Issuer: "pricing-test",
	})
	require.NoError(t, err)

	tokenString, err := issuer.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	claims := Claims{Roles: []string{RoleAdmin, RoleAuditor}}

	assert.True(t, claims.HasRole(RoleAdmin))
	assert.True(t, claims.HasRole(RoleAuditor))
	assert.False(t, claims.HasRole(RoleBroker))
	assert.False(t, claims.HasRole("nonexistent"))

	assert.True(t, claims.HasAnyRole(RoleBroker, RoleAuditor))
	assert.False(t, claims.HasAnyRole(RoleBroker, RoleAPIClient))
}

func TestClaimsFromContext(t *testing.T) {
	ctx := context.Background()
	_, ok := ClaimsFromContext(ctx)
	assert.False(t, ok)

	expected := &Claims{
		UserID: uuid.New(),
		Roles:  []string{RoleUnderwriter},
	}
	ctx = ContextWithClaims(ctx, expected)
	got, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, expected.UserID, got.UserID)
	assert.Equal(t, []string{RoleUnderwriter}, got.Roles)
}
