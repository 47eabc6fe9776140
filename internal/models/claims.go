package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of the signed access token.
type AccessClaims struct {
	UserID uint64   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
