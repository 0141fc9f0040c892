package model

import "github.com/golang-jwt/jwt"

// AdminClaims are the JWT claims accepted on the admin surface.
type AdminClaims struct {
	jwt.StandardClaims
	UserName string `json:"user_name"`
}
