package service

import (
	"errors"
	"time"

	"legalconnect/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidContinuation = errors.New("invalid oauth continuation token")

// ContinuationIssuerJWT signs the short-lived {id, role} continuation used
// during the Google redirect round trip. It is scoped to the OAuth flow
// only and is not honored by the access gate.
type ContinuationIssuerJWT struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

type continuationClaims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

func (c ContinuationIssuerJWT) IssueContinuation(ref entity.AccountRef) (string, error) {
	ttl := c.TTL
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	now := time.Now()
	claims := continuationClaims{
		ID:   ref.ID.String(),
		Role: string(ref.Role),
		Type: "oauth",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   ref.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.Secret)
}

func (c ContinuationIssuerJWT) ParseContinuation(token string) (entity.AccountRef, error) {
	parsed, err := jwt.ParseWithClaims(token, &continuationClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidContinuation
		}
		return c.Secret, nil
	})
	if err != nil {
		return entity.AccountRef{}, ErrInvalidContinuation
	}
	claims, ok := parsed.Claims.(*continuationClaims)
	if !ok || !parsed.Valid || claims.Type != "oauth" {
		return entity.AccountRef{}, ErrInvalidContinuation
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return entity.AccountRef{}, ErrInvalidContinuation
	}
	return entity.AccountRef{ID: id, Role: entity.Role(claims.Role)}, nil
}
