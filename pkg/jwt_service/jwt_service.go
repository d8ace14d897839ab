// Package jwtservice verifies bearer tokens issued by the identity provider.
// A valid token yields the caller's subject id, email and display name; this
// service never issues end-user tokens itself (GenerateToken exists for tests
// and local tooling).
package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/habitproof/internal/api"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
)

var (
	tokenTTL = time.Hour * 24
)

type JWTService struct {
	secret []byte
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

func (s *JWTService) GenerateToken(subjectID, email, displayName string) (string, error) {
	now := time.Now()
	claims := &api.IdentityClaims{
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.IdentityClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		// Malformed, expired and mis-signed tokens all land here
		return nil, errors.Join(errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*api.IdentityClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
