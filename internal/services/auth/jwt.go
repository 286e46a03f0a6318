package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/typefight/typefighter-go/internal/model"
)

// JWTVerifier validates access tokens locally using the provider's HMAC
// signing secret. Use it when the deployment holds the secret; it avoids a
// network round-trip per join.
type JWTVerifier struct {
	secret []byte
}

// Ensure JWTVerifier implements Verifier
var _ Verifier = (*JWTVerifier)(nil)

// NewJWTVerifier creates a verifier for HS256-signed tokens
func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

// Verify parses and validates the token, returning its subject claim
func (v *JWTVerifier) Verify(ctx context.Context, accessToken string) (string, error) {
	token, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", model.ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", model.ErrTokenInvalid
	}

	return subject, nil
}
