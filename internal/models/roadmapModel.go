package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience levels a roadmap can target.
var RoadmapLevels = []string{"BEGINNER", "INTERMEDIATE", "ADVANCED"}

func ValidLevel(level string) bool {
	for _, v := range RoadmapLevels {
		if v == level {
			return true
		}
	}
	return false
}

type Roadmap struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobTitle  string             `bson:"job_title" json:"jobTitle"`
	Level     string             `bson:"level" json:"level"`
	TimeRange string             `bson:"time_range" json:"timeRange"`
	Content   string             `bson:"content" json:"roadmapContent"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedBy string             `bson:"created_by" json:"createdBy"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	// IsOwner is filled per request for the listing endpoint, never stored.
	IsOwner bool `bson:"-" json:"isOwner"`
}

// RoadmapFilter narrows a roadmap listing.
type RoadmapFilter struct {
	JobTitle string
	Level    string
	// Mine restricts the listing to the requesting user's roadmaps.
	Mine bool
	// UserID is set by the service when Mine is true.
	UserID primitive.ObjectID
}
