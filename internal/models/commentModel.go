package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MaxCommentLength = 1000

type Comment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Content       string               `bson:"content" json:"content"`
	Author        primitive.ObjectID   `bson:"author" json:"author"`
	AuthorName    string               `bson:"author_name" json:"authorName"`
	Post          primitive.ObjectID   `bson:"post" json:"post"`
	ParentComment *primitive.ObjectID  `bson:"parent_comment,omitempty" json:"parentComment,omitempty"`
	Likes         []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt     time.Time            `bson:"created_at" json:"createdAt"`
}

// Thread is one top-level comment with its direct replies. Only a single
// nesting level is rendered; deeper replies are not displayed.
type Thread struct {
	Comment
	Replies []Comment `json:"replies"`
}
