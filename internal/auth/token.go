package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fittrack/fittrack-be/internal/config"
)

// ErrInvalidToken covers malformed, mis-signed, and expired tokens. Callers
// treat any token failure the same way: the request is unauthenticated.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity fields embedded in every issued token.
// Subject duplicates Username so consumers can read the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IsExpired reports whether the claims' expiry is strictly in the past.
func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(time.Now())
}

// TokenManager issues and verifies HS256-signed JWTs. It is immutable after
// construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager validates the signing secret up front: a blank or short
// secret is a configuration error and must abort startup, never surface at
// request time.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token manager: signing secret is required")
	}
	if len(secret) < config.MinSecretLength {
		return nil, fmt.Errorf("token manager: signing secret must be at least %d characters for HS256", config.MinSecretLength)
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Generate issues a signed compact token for the given identity.
func (t *TokenManager) Generate(userID int64, username, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the signature and structure of a token and returns its
// claims. Every failure mode wraps ErrInvalidToken.
func (t *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether the token belongs to expectedUsername and has not
// expired. Decode failures propagate as ErrInvalidToken rather than a silent
// false so callers cannot confuse a broken token with a mismatched one.
func (t *TokenManager) Validate(tokenString, expectedUsername string) (bool, error) {
	claims, err := t.Parse(tokenString)
	if err != nil {
		return false, err
	}
	return claims.Subject == expectedUsername && !claims.IsExpired(), nil
}
