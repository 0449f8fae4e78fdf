package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backoffice/internal/model"
)

const (
	// DefaultTokenTTL is how long a session token stays valid.
	DefaultTokenTTL = 7 * 24 * time.Hour
	// DefaultClockSkew is the tolerance applied to exp, nbf and iat checks.
	DefaultClockSkew = 30 * time.Second
)

var (
	// ErrMissingSecret is returned when no signing secret is configured.
	ErrMissingSecret = errors.New("token signing secret is not configured")
	// ErrTokenInvalid covers every verification failure: malformed, expired, not yet
	// valid, wrong algorithm or bad signature.
	ErrTokenInvalid = errors.New("invalid session token")
)

// Claims represents the session token claims. The account id travels in the standard
// subject claim.
type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenSubject is what a session token is minted for.
type TokenSubject struct {
	ID    string
	Email string
	Role  model.Role
}

// TokenCodec signs and verifies HS256 session tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

// TokenOption customises a TokenCodec.
type TokenOption func(*TokenCodec)

// WithTTL sets the token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(c *TokenCodec) { c.ttl = ttl }
}

// WithClockSkew sets the leeway tolerated between issuer and verifier clocks.
func WithClockSkew(skew time.Duration) TokenOption {
	return func(c *TokenCodec) {
		if skew >= 0 {
			c.leeway = skew
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) TokenOption {
	return func(c *TokenCodec) { c.now = now }
}

// NewTokenCodec creates a codec bound to secret.
func NewTokenCodec(secret string, opts ...TokenOption) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	c := &TokenCodec{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		leeway: DefaultClockSkew,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Mint signs a new token for subject.
func (c *TokenCodec) Mint(subject TokenSubject) (string, error) {
	token, _, err := c.issue(subject)
	return token, err
}

// issue signs a token for subject and returns it with its exp claim.
func (c *TokenCodec) issue(subject TokenSubject) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := &Claims{
		Email: subject.Email,
		Role:  subject.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify validates tokenString and returns its claims. Any failure yields ErrTokenInvalid.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(c.leeway),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
