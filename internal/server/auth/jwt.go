// Package auth issues and validates the HS256 access tokens that carry an
// actor's address between calls.
package auth

import (
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claim set with the actor address.
type Claims struct {
	jwt.RegisteredClaims
	Address string
}

func GenerateToken(address string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Address: address,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetAddressFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Address, nil
}
