package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
)

// payloadClaims wraps an opaque payload string. The session model has
// no token lifecycle, so there is deliberately no expiry claim: the
// signature only protects the cookie against client-side tampering.
type payloadClaims struct {
	Payload string `json:"payload"`
	jwt.RegisteredClaims
}

// Sign wraps payload in a signed HS256 token
func Sign(payload, secret string) (string, error) {
	claims := payloadClaims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "smartbank-api",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify checks the signature and returns the wrapped payload
func Verify(tokenString, secret string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &payloadClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrTokenInvalid
	}

	claims, ok := t.Claims.(*payloadClaims)
	if !ok || !t.Valid {
		return "", ErrTokenInvalid
	}

	return claims.Payload, nil
}
