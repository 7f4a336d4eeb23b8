// Package auth issues and verifies the signed bearer tokens that
// identify a user to downstream services. Tokens are HS256 JWTs bound
// to the "auth_service" issuer; the signing secret comes from server
// configuration and is never persisted.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the fixed issuer claim stamped into every token and
// required back on verification.
const Issuer = "auth_service"

// Claims is the claim set carried by issued tokens: the standard
// registered claims plus an explicit username claim.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken signs an HS256 token for username, valid for ttl from
// now. The subject mirrors the username claim.
func GenerateToken(username string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	})
	// Historical tokens carry typ JWS instead of the library default.
	token.Header["typ"] = "JWS"

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies the token's signature, issuer and
// expiry, and returns the username claim. Each failure maps to one of
// the common token sentinels so callers can log the specific kind
// while reporting a uniform message to the user.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	}, jwt.WithIssuer(Issuer))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return "", common.ErrTokenWrongIssuer
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Username == "" {
		return "", common.ErrTokenMissingClaim
	}

	return claims.Username, nil
}
