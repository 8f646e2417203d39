// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pureflow/config"
	"pureflow/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. The subject is the user's normalized identity; role
// capabilities travel as a claim so route gating stays stateless.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    time.Hour * 24, // the device stays signed in for a day
	}, nil
}

// GenerateToken creates a signed access token carrying identity and roles.
func (s *jwtService) GenerateToken(identity string, roles []string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity,                     // Subject (who the token is for)
		"iat":   time.Now().Unix(),            // Issued At
		"exp":   time.Now().Add(s.ttl).Unix(), // Expiration Time
		"roles": roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
}
