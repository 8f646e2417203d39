package service

import "github.com/golang-jwt/jwt/v5"

// TokenService issues and validates the signed session tokens that carry a
// user's normalized identity and role capabilities between requests.
type TokenService interface {
	// GenerateToken creates a signed access token for the given identity and
	// role strings.
	GenerateToken(identity string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
