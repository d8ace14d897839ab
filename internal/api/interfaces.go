package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(subjectID, email, displayName string) (string, error)
	ParseToken(tokenString string) (*IdentityClaims, error)
}

// IdentityClaims is the token payload the identity provider signs. Subject
// carries the provider's stable user id.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}
