package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 session token encoding the user's id and role,
// valid for ttl from now.
func IssueToken(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken is a pure function: given a token string and the signing
// secret it returns the embedded claims, domain.ErrTokenExpired when the
// token's lifetime has passed, or domain.ErrInvalidToken for any other
// defect (bad signature, wrong algorithm, malformed payload).
func VerifyToken(tokenStr, secret string) (*TokenClaims, error) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !t.Valid {
		return nil, domain.ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}
	return &TokenClaims{UserID: claims.Subject, Role: role}, nil
}
