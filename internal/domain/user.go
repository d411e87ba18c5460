package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account that exercises are logged against.
// Usernames are not unique; the store-generated ID is the only identity.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}
