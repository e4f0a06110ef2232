package proxy

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenKey struct{}

// WithToken attaches a caller's token to the context, the same place HTTP
// middleware or gRPC metadata would put it. The Searcher interface stays
// untouched, which is what lets the gate stack under the caching proxy.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// searchClaims is what a search token carries.
type searchClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GateProxy is a protection proxy: it validates the HMAC-signed token on the
// context before letting the call through. The subject behind it never sees
// unauthenticated traffic.
type GateProxy struct {
	subject Searcher
	secret  []byte
}

func NewGateProxy(subject Searcher, secret []byte) *GateProxy {
	return &GateProxy{subject: subject, secret: secret}
}

// Search checks the token and delegates. A missing token and a bad token
// fail differently so callers can tell "log in" from "go away".
func (p *GateProxy) Search(ctx context.Context, term string) ([]Result, error) {
	raw, ok := ctx.Value(tokenKey{}).(string)
	if !ok || raw == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(raw, &searchClaims{}, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return p.subject.Search(ctx, term)
}

// IssueToken mints a token the gate will accept, signed HS256 with the given
// secret. Real systems have a login giving these out; the demo and tests
// mint their own.
func IssueToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &searchClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "patterns-lab",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
