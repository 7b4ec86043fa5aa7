package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are valid for 7 days from issue and carry the username as
// their subject. No server-side session state exists; expiry is the
// only revocation.
const tokenTTL = 7 * 24 * time.Hour

const tokenIssuer = "movie-catalog-api"

// generateToken issues a signed HS256 JWT for the given username.
func generateToken(username, secret string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken verifies signature, algorithm and expiry, and returns the
// token's subject.
func parseToken(token, secret string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
