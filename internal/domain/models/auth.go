package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the JWT claims accepted by the API when bearer
// authentication is enabled.
type TokenClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email,omitempty"`
	Role                 string `json:"role,omitempty"`
}

// CallerID returns the caller identity from the JWT subject claim.
func (c *TokenClaims) CallerID() string {
	return c.Subject
}
