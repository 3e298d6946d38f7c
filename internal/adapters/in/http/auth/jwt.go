package auth

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, expired, signed
// with the wrong key, or carrying the wrong role for the requested credential.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and validates the HS256 tokens used by the HTTP surface.
// Token issuance normally happens in the accounts service; the issue side here
// exists for that service and for tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given actor.
func (s *TokenService) Issue(role string, userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  now.Add(s.ttl).Unix(),
		"iat":  now.Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseCustomer validates the token and returns a customer credential.
// Tokens carrying any other role are rejected.
func (s *TokenService) ParseCustomer(token string) (CustomerCredential, error) {
	id, err := s.parse(token, RoleCustomer)
	if err != nil {
		return CustomerCredential{}, err
	}
	return CustomerCredential{id: id}, nil
}

// ParseProvider validates the token and returns a provider credential.
func (s *TokenService) ParseProvider(token string) (ProviderCredential, error) {
	id, err := s.parse(token, RoleProvider)
	if err != nil {
		return ProviderCredential{}, err
	}
	return ProviderCredential{id: id}, nil
}

// ParseDriver validates the token and returns a driver credential.
func (s *TokenService) ParseDriver(token string) (DriverCredential, error) {
	id, err := s.parse(token, RoleDriver)
	if err != nil {
		return DriverCredential{}, err
	}
	return DriverCredential{id: id}, nil
}

func (s *TokenService) parse(tokenString string, wantRole string) (kernel.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.UUID{}, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role != wantRole {
		return kernel.UUID{}, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return kernel.UUID{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}

	return id, nil
}
