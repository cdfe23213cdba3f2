// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelapp/config"
	"travelapp/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Session tokens carry {id, email} and no expiry claim; the cookie they ride in
// is the only thing bounding their lifetime.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Session}, nil
}

// Generate signs an HS256 token over the user's identity.
func (s *jwtService) Generate(userID primitive.ObjectID, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID.Hex(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the token signature and extracts the identity claims.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	idHex, ok := claims["id"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.SessionClaims{UserID: userID, Email: email}, nil
}
