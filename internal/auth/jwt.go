package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New(ErrMsgInvalidToken)

// Claims identifies the performer acting on a buyer. Subject holds the performer id.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// PerformerID returns the authenticated performer.
func (c *Claims) PerformerID() string {
	return c.Subject
}

// GenerateToken mints an HS256 token for a performer. A zero ttl uses DefaultTokenTTL.
func GenerateToken(secret, performerID, name string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New(ErrMsgSecretRequired)
	}
	if strings.TrimSpace(performerID) == "" {
		return "", errors.New(ErrMsgPerformerRequired)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	jti, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgGenerateJTIFailed, err)
	}

	now := time.Now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   performerID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgSignTokenFailed, err)
	}
	return signed, nil
}

// ValidateToken parses tokenStr and returns its claims.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(ErrMsgUnexpectedSigning, token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, ErrMsgMissingSubject)
	}
	return claims, nil
}

type claimsKey struct{}

// WithClaims stores validated claims on ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// FromContext returns the claims stored by WithClaims.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
