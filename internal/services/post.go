package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"careerkit/internal/models"
	"careerkit/internal/storage"
)

// parseID turns a caller-supplied id into an ObjectID. A malformed id is
// indistinguishable from a missing record.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}
	return oid, nil
}

// ListPosts returns one page of posts, newest first, with the total match
// count for page-count math.
func (s *Service) ListPosts(ctx context.Context, filter models.PostFilter, page, limit int) ([]models.Post, int64, error) {
	page = normalizePage(page)
	limit = normalizePageSize(limit)
	return s.Store.Posts(ctx, filter, page, limit)
}

func (s *Service) GetPost(ctx context.Context, id string) (*models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Store.Post(ctx, oid)
}

// CreatePost adds a new post authored by the current user. Title and
// content are stored as given; length limits are the UI's concern.
func (s *Service) CreatePost(ctx context.Context, title, content, category string, tags []string) (*models.Post, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if !models.ValidCategory(category) {
		return nil, errors.WithMessage(ErrInvalidInput, "unknown category")
	}

	post := models.Post{
		Title:      strings.TrimSpace(title),
		Content:    content,
		Author:     identity.UserID,
		AuthorName: identity.Username,
		Category:   category,
		Tags:       tags,
	}
	if err := s.Store.CreatePost(ctx, &post); err != nil {
		return nil, err
	}

	s.Log.WithFields(map[string]any{"post": post.ID.Hex(), "author": identity.Username}).Info("post created")
	return &post, nil
}

// UpdatePost rewrites a post's mutable fields. Only the author may do so;
// the authorization check runs before any write.
func (s *Service) UpdatePost(ctx context.Context, id, title, content, category string, tags []string) (*models.Post, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if !models.ValidCategory(category) {
		return nil, errors.WithMessage(ErrInvalidInput, "unknown category")
	}

	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != identity.UserID {
		return nil, ErrForbidden
	}

	post.Title = strings.TrimSpace(title)
	post.Content = content
	post.Category = category
	post.Tags = tags
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := s.Store.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. Same authorization rule as UpdatePost.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != identity.UserID {
		return ErrForbidden
	}

	return s.Store.DeletePost(ctx, post.ID)
}

// TogglePostLike flips the current user's membership in the post's like
// set and returns the new set. Toggling twice restores the original state.
func (s *Service) TogglePostLike(ctx context.Context, postID string) ([]primitive.ObjectID, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	oid, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	return s.Store.ToggleLike(ctx, oid, identity.UserID)
}
