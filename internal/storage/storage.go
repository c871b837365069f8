package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"careerkit/internal/models"
)

var (
	// ErrNotFound means no record matches the given id or filter.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint (email, username) was violated.
	ErrConflict = errors.New("record already exists")
)

// Storage is the document-store contract. Mongo backs it in production,
// Memory backs it in tests and local development.
type Storage interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	Posts(ctx context.Context, filter models.PostFilter, page, limit int) ([]models.Post, int64, error)
	Post(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	AppendPostComment(ctx context.Context, postID, commentID primitive.ObjectID) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	Comment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	CommentsByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)

	CreateResume(ctx context.Context, resume *models.Resume) error
	Resumes(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Resume, int64, error)
	DeleteResume(ctx context.Context, id, userID primitive.ObjectID) error

	CreateRoadmap(ctx context.Context, roadmap *models.Roadmap) error
	Roadmaps(ctx context.Context, filter models.RoadmapFilter, page, limit int) ([]models.Roadmap, int64, error)
	Roadmap(ctx context.Context, id primitive.ObjectID) (*models.Roadmap, error)
	DeleteRoadmap(ctx context.Context, id, userID primitive.ObjectID) error

	Close(ctx context.Context) error
}
