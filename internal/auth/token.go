// Package auth issues and validates the JWT bearer tokens that protect the
// API. Tokens are signed with HMAC-SHA256 and embed the administrator's
// email and profile so the authorization middleware can match roles without
// a database lookup.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vferraz/garage-api/internal/models"
)

// TokenValidity is the lifetime of an issued token
const TokenValidity = 24 * time.Hour

// ErrEmptySecret is returned when constructing a TokenService without a
// signing secret. An empty secret must abort startup, never degrade into
// unsigned or empty tokens.
var ErrEmptySecret = errors.New("jwt signing secret is empty")

// Claims is the claim set embedded in every issued token
type Claims struct {
	Email   string `json:"email"`
	Profile string `json:"profile"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with a shared secret
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service for the given signing secret.
// Returns ErrEmptySecret if the secret is empty.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue signs a token carrying the administrator's email and profile,
// valid for TokenValidity from now
func (s *TokenService) Issue(admin models.Administrator) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   admin.Email,
		Profile: admin.Profile,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the signature and time claims of a token string and
// returns its claims. Expired or tampered tokens are rejected.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Pin the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.Email == "" {
		return nil, errors.New("token missing required 'email' claim")
	}
	if claims.Profile != models.ProfileAdmin && claims.Profile != models.ProfileEditor {
		return nil, fmt.Errorf("invalid profile '%s'. Allowed profiles: Admin, Editor", claims.Profile)
	}

	return claims, nil
}
