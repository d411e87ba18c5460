// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity for a user.
// UserID is a plain reference; the user is looked up before insert, never joined.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"` // minutes
	Date        time.Time          `bson:"date"`     // UTC midnight of the calendar day
}
