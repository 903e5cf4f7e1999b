package utils

import (
	"errors"
	"time"

	"legalconnect/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// JWTManager signs and verifies the bearer token. Validity is entirely
// determined by signature and expiry; there is no session table behind it.
type JWTManager struct {
	Secret   []byte
	Issuer   string
	TokenTTL time.Duration
}

// AccessClaims is the {id, role} assertion plus standard claims.
type AccessClaims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (m JWTManager) Issue(ref entity.AccountRef) (string, error) {
	ttl := m.TokenTTL
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	now := time.Now()
	claims := AccessClaims{
		ID:   ref.ID.String(),
		Role: string(ref.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   ref.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// Parse verifies signature and expiry and returns the embedded account
// ref. Expired and malformed tokens are reported as distinct errors so
// the access gate can surface a specific rejection reason.
func (m JWTManager) Parse(tokenString string) (entity.AccountRef, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.AccountRef{}, ErrTokenExpired
		}
		return entity.AccountRef{}, ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return entity.AccountRef{}, ErrTokenInvalid
	}
	if claims.ID == "" || claims.Role == "" {
		return entity.AccountRef{}, ErrTokenMalformed
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return entity.AccountRef{}, ErrTokenMalformed
	}
	return entity.AccountRef{ID: id, Role: entity.Role(claims.Role)}, nil
}
