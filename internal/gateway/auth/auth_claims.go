package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleStudent grants access to the lesson catalog and video playback.
	RoleStudent = "student"

	// RoleInstructor additionally grants lesson upload and removal.
	RoleInstructor = "instructor"
)

type Claims struct {
	Role string `json:"user_role"`
	jwt.RegisteredClaims
}

func ParseClaims(tokenString, jwtSecret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
