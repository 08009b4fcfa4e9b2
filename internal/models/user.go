package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile holds optional user profile details collected after sign-up.
type Profile struct {
	Gender        string `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth   string `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	About         string `bson:"about,omitempty" json:"about,omitempty"`
	ContactNumber string `bson:"contact_number,omitempty" json:"contactNumber,omitempty"`
}

// UserDB represents a user document in the users collection.
type UserDB struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email,omitempty" json:"email,omitempty"`
	FirstName    string        `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName     string        `bson:"last_name,omitempty" json:"lastName,omitempty"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	AccountType  string        `bson:"account_type,omitempty" json:"accountType,omitempty"`
	Profile      Profile       `bson:"profile,omitempty" json:"profile,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}
