// Package auth attributes requests to actors. Callers present an HS256
// bearer token whose subject claim is their actor identifier.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund/internal/core/domain"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Tokens issues and verifies actor tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a token service signing with secret.
func NewTokens(secret, issuer string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue returns a signed token for actor.
func (t *Tokens) Issue(actor domain.ActorID) (string, error) {
	if actor == "" {
		return "", ErrTokenInvalid
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   string(actor),
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify validates token and returns the actor it was issued to.
func (t *Tokens) Verify(token string) (domain.ActorID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return domain.ActorID(claims.Subject), nil
}

type actorKey struct{}

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor domain.ActorID) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the authenticated actor stored in ctx.
func ActorFrom(ctx context.Context) (domain.ActorID, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.ActorID)
	return actor, ok && actor != ""
}
