package session

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role literal that grants access to the admin console.
// The comparison is exact and case-sensitive.
const AdminRole = "Admin"

// Claims is the subset of token claims the client cares about.
type Claims struct {
	Role string `json:"role"`
}

// Session is the in-memory record of the current authentication token and
// the role derived from it. It is never persisted, so a process restart
// clears it.
//
// The token's signature is deliberately not verified here: the server is
// the sole authority and the client merely reflects decoded claims for UI
// gating. Authorization is re-checked server-side on every admin call.
type Session struct {
	token  string
	claims *Claims
}

func New() *Session {
	return &Session{}
}

// SetToken stores the token and derives the role from its payload segment.
// A malformed token fails soft: the token is kept (the session stays
// authenticated) but the role is dropped, so role-based checks default to
// non-admin.
func (s *Session) SetToken(token string) {
	s.token = token
	s.claims = nil
	if token == "" {
		log.Println("[Session] Token cleared")
		return
	}
	log.Printf("[Session] Token stored (len=%d)", len(token))

	claims, err := decodeClaims(token)
	if err != nil {
		log.Printf("[Session] Failed to decode token claims: %v", err)
		return
	}
	s.claims = claims
}

// Clear resets the session to unauthenticated. Purely local; there is no
// logout network call.
func (s *Session) Clear() {
	s.SetToken("")
}

// Token returns the current bearer token, or "" when unauthenticated.
// Session satisfies the gateway's TokenSource with this method.
func (s *Session) Token() string {
	return s.token
}

// IsAuthenticated reports whether a token is held. Token validity is
// trusted at face value once issued by the login flow; no expiry or
// signature check is performed.
func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

// Role returns the derived role, or "" when no role could be decoded.
func (s *Session) Role() string {
	if s.claims == nil {
		return ""
	}
	return s.claims.Role
}

// IsAdmin reports whether the derived role equals AdminRole exactly.
func (s *Session) IsAdmin() bool {
	return s.claims != nil && s.claims.Role == AdminRole
}

// decodeClaims decodes the middle segment of the dot-delimited token as
// base64url JSON. Only the payload is touched; the header and signature
// segments are ignored.
func decodeClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, jwt.ErrTokenMalformed
	}
	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, err
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
