// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record. The password field holds the bcrypt hash,
// never the plaintext, and is excluded from every JSON response.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
