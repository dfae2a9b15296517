package session

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken builds a dot-delimited token with the given payload JSON. The
// signature is junk on purpose: the session never verifies it.
func makeToken(payloadJSON string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(payloadJSON))
	return header + "." + payload + ".sig"
}

// signedToken produces a real HS256-signed token, as the login endpoint
// would issue.
func signedToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return signed
}

// ============================================
// SetToken / Role Derivation Tests
// ============================================

func TestSession_SetToken_AdminRole(t *testing.T) {
	s := New()

	s.SetToken(makeToken(`{"role":"Admin"}`))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "Admin", s.Role())
}

func TestSession_SetToken_UserRole(t *testing.T) {
	s := New()

	s.SetToken(makeToken(`{"role":"User"}`))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "User", s.Role())
}

func TestSession_SetToken_SignedTokenDecodesWithoutVerification(t *testing.T) {
	s := New()

	s.SetToken(signedToken(t, "Admin"))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
}

func TestSession_RoleComparisonIsCaseSensitive(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"lowercase", "admin"},
		{"uppercase", "ADMIN"},
		{"padded", "Admin "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetToken(makeToken(`{"role":"` + tt.role + `"}`))
			assert.False(t, s.IsAdmin())
		})
	}
}

// ============================================
// Malformed Token Tests
// ============================================

func TestSession_MalformedToken_SoftFailsToNoRole(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not dot-delimited", "not-a-jwt"},
		{"two segments", "aaa.bbb"},
		{"four segments", "a.b.c.d"},
		{"payload not base64", "header.!!!.sig"},
		{"payload not JSON", "header." + base64.RawURLEncoding.EncodeToString([]byte("garbage")) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()

			s.SetToken(tt.token)

			// Authentication state stays "has token"; only the role is lost.
			assert.True(t, s.IsAuthenticated())
			assert.False(t, s.IsAdmin())
			assert.Empty(t, s.Role())
			assert.Equal(t, tt.token, s.Token())
		})
	}
}

func TestSession_MissingRoleField(t *testing.T) {
	s := New()

	s.SetToken(makeToken(`{"sub":"someone"}`))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Role())
}

// ============================================
// Lifecycle Tests
// ============================================

func TestSession_StartsUnauthenticated(t *testing.T) {
	s := New()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
}

func TestSession_Clear(t *testing.T) {
	s := New()
	s.SetToken(makeToken(`{"role":"Admin"}`))
	require.True(t, s.IsAdmin())

	s.Clear()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Role())
}

func TestSession_ReplacingTokenRederivesRole(t *testing.T) {
	s := New()
	s.SetToken(makeToken(`{"role":"Admin"}`))
	require.True(t, s.IsAdmin())

	s.SetToken(makeToken(`{"role":"User"}`))

	assert.False(t, s.IsAdmin())
	assert.Equal(t, "User", s.Role())
}
