package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose scopes a token to the single flow it was issued for. A session
// token can never pass as a reset token and vice versa.
type Purpose string

const (
	PurposeSession     Purpose = "session"
	PurposeEmailVerify Purpose = "email_verify"
	PurposeReset       Purpose = "password_reset"
)

type Claims struct {
	UserID  string  `json:"user_id"`
	Name    string  `json:"name"`
	Role    string  `json:"role,omitempty"`
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for the given claims with expiry now+ttl.
func Sign(secret string, ttl time.Duration, claims Claims) (string, error) {
	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a token and checks it was issued for the
// expected purpose.
func Verify(secret, tokenString string, purpose Purpose) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Purpose != purpose {
		return nil, fmt.Errorf("token purpose %q, want %q", claims.Purpose, purpose)
	}

	return claims, nil
}
