package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionClaims is the identity carried inside a session token.
type SessionClaims struct {
	UserID primitive.ObjectID
	Email  string
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate signs a token over the given identity.
	Generate(userID primitive.ObjectID, email string) (string, error)

	// Verify checks the token signature and returns the embedded identity.
	// Any malformed, tampered or foreign token yields an error.
	Verify(token string) (*SessionClaims, error)
}
