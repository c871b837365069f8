package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// Identity is the decoded session credential. It carries everything the
// token holds, so resolving it never touches the database.
type Identity struct {
	UserID   primitive.ObjectID `json:"userId"`
	Email    string             `json:"email"`
	Username string             `json:"username"`
}
