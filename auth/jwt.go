package auth

import (
	"backend/model"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var SecretKey = []byte("")

type Claims struct {
	User model.UserDto `json:"user"`
	jwt.RegisteredClaims
}

func GenerateToken(user model.UserDto) (string, error) {
	now := time.Now()
	expirationTime := now.Add(30 * time.Minute)

	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.Email,
			Issuer:    "portfolio-intel",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SecretKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return SecretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	if claims.Issuer != "portfolio-intel" {
		return nil, fmt.Errorf("invalid issuer")
	}

	if claims.Subject != claims.User.Email {
		return nil, fmt.Errorf("subject mismatch: identity integrity compromised")
	}

	return claims, nil
}
