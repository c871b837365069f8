package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories a post may carry. Empty category is allowed.
var PostCategories = []string{
	"General",
	"Career Advice",
	"Resume Help",
	"Interview Tips",
	"Job Search",
	"Networking",
}

func ValidCategory(c string) bool {
	if c == "" {
		return true
	}
	for _, v := range PostCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Author  primitive.ObjectID `bson:"author" json:"author"`
	// Username is denormalized at creation; usernames never change.
	AuthorName string               `bson:"author_name" json:"authorName"`
	Category   string               `bson:"category,omitempty" json:"category,omitempty"`
	Tags       []string             `bson:"tags" json:"tags"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments   []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt  time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updatedAt"`
}

// PostFilter narrows a post listing. Zero values mean "no restriction".
type PostFilter struct {
	Category string
	Search   string
}
