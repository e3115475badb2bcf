package auth

import "vfxscaffold/internal/domain/models"

// JWTVerifier verifies bearer tokens presented to the HTTP API.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or badly signed.
	VerifyToken(tokenString string) (*models.TokenClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
