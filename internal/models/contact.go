package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage represents an append-only document in the responses collection.
type ContactMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
