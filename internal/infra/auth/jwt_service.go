// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"scout/config"
	"scout/internal/domain/service"
)

// defaultSessionTTL is used when no TTL is configured.
const defaultSessionTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The signing secret is process-wide configuration
// loaded once at startup.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTokenTTL != 0 {
		ttl = cfg.Auth.SessionTokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    ttl,
	}, nil
}

// Issue creates a new signed session token embedding the user ID and an
// expiration of issuance time plus the configured TTL.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry against the configured
// secret and returns the embedded user ID.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		// Expiry is the only failure distinguishable from a bad token;
		// callers treat both as unauthenticated.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, service.ErrTokenExpired
		}

		return uuid.Nil, service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, service.ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, service.ErrTokenInvalid
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, service.ErrTokenInvalid
	}

	return userID, nil
}
