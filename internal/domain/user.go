package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a user document in the store.
//
// All fields except the identifier are optional: the store accepts any
// subset of them, and pointer types distinguish "absent" from a zero
// value so partial updates merge instead of overwriting.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        *string            `bson:"name,omitempty" json:"name,omitempty"`
	PhoneNumber *float64           `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	City        *string            `bson:"city,omitempty" json:"city,omitempty"`
}
