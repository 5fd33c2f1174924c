package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artem13815/petshop/pkg/auth"
)

// Generator issues and validates HMAC-signed session tokens.
type Generator struct {
	secret []byte
	issuer string
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewGenerator builds a Generator for the given HMAC algorithm
// (HS256/HS384/HS512).
func NewGenerator(secret, algorithm, issuer string, ttl time.Duration) (*Generator, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: only HMAC is supported", algorithm)
	}
	return &Generator{secret: []byte(secret), issuer: issuer, method: method, ttl: ttl}, nil
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(g.method, claims)
	return token.SignedString(g.secret)
}

// Validate checks signature, issuer and expiry and returns the subject.
// Malformed, expired and forged tokens all fail with auth.ErrInvalidToken;
// the caller learns nothing about which check tripped.
func (g *Generator) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, auth.ErrInvalidToken
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{g.method.Alg()}))
	if err != nil || !token.Valid {
		return "", auth.ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return "", auth.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", auth.ErrInvalidToken
	}
	return claims.Subject, nil
}
