package entity

import (
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDescription is applied when a listing is created without one.
const DefaultDescription = "No description"

// GeoPoint is a GeoJSON point: a "Point" type tag plus a [longitude, latitude] pair.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type" validate:"required,eq=Point"`
	Coordinates orb.Point `bson:"coordinates" json:"coordinates"`
}

// Lon returns the longitude of the point.
func (p GeoPoint) Lon() float64 { return p.Coordinates.Lon() }

// Lat returns the latitude of the point.
func (p GeoPoint) Lat() float64 { return p.Coordinates.Lat() }

// Accommodation is a listing owned by a user. The owner is set once at
// creation from the authenticated identity and is immutable afterwards.
// The wire name of the owner field is "user" for compatibility with
// existing clients.
type Accommodation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Location    GeoPoint           `bson:"location" json:"location"`
	Images      []string           `bson:"images" json:"images"`
	Rating      float64            `bson:"rating" json:"rating"`
	NumReviews  int                `bson:"numReviews" json:"numReviews"`
	Owner       primitive.ObjectID `bson:"user" json:"user"`
}
