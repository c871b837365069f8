package services

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"careerkit/internal/models"
)

// SortOrder for top-level comments. Replies are never re-sorted.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// AddComment attaches a comment to a post, optionally as a reply. The
// parent, when given, must exist and belong to the same post. The comment
// insert and the post's comment-list append are two separate writes; a
// failure in between leaves the comment reachable only by post query.
func (s *Service) AddComment(ctx context.Context, postID, content, parentCommentID string) (*models.Comment, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.WithMessage(ErrInvalidInput, "content is required")
	}
	if len([]rune(content)) > models.MaxCommentLength {
		return nil, errors.WithMessage(ErrInvalidInput, "comment is too long")
	}
	if postID == "" {
		return nil, errors.WithMessage(ErrInvalidInput, "postId is required")
	}

	oid, err := parseID(postID)
	if err != nil {
		return nil, err
	}
	post, err := s.Store.Post(ctx, oid)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Content:    content,
		Author:     identity.UserID,
		AuthorName: identity.Username,
		Post:       post.ID,
	}

	if parentCommentID != "" {
		parentID, err := parseID(parentCommentID)
		if err != nil {
			return nil, errors.WithMessage(ErrInvalidInput, "bad parent comment id")
		}
		parent, err := s.Store.Comment(ctx, parentID)
		if err != nil {
			return nil, errors.WithMessage(ErrInvalidInput, "parent comment not found")
		}
		if parent.Post != post.ID {
			return nil, errors.WithMessage(ErrInvalidInput, "parent comment belongs to another post")
		}
		comment.ParentComment = &parent.ID
	}

	if err := s.Store.CreateComment(ctx, &comment); err != nil {
		return nil, err
	}
	if err := s.Store.AppendPostComment(ctx, post.ID, comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListComments returns the post's comments, newest first.
func (s *Service) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return nil, errors.WithMessage(ErrInvalidInput, "postId is required")
	}
	oid, err := parseID(postID)
	if err != nil {
		return nil, err
	}
	return s.Store.CommentsByPost(ctx, oid)
}

// BuildThread arranges a flat comment list into top-level threads with one
// level of replies. Top-level comments are ordered by creation time per the
// requested order; replies keep their relative order from the input. A
// reply whose parent is not a top-level comment in the input is dropped.
func BuildThread(comments []models.Comment, order SortOrder) []models.Thread {
	topLevel := []models.Comment{}
	replies := []models.Comment{}
	for _, c := range comments {
		if c.ParentComment == nil {
			topLevel = append(topLevel, c)
		} else {
			replies = append(replies, c)
		}
	}

	sort.SliceStable(topLevel, func(i, j int) bool {
		if order == SortOldest {
			return topLevel[i].CreatedAt.Before(topLevel[j].CreatedAt)
		}
		return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
	})

	threads := make([]models.Thread, 0, len(topLevel))
	for _, c := range topLevel {
		thread := models.Thread{Comment: c, Replies: []models.Comment{}}
		for _, r := range replies {
			if *r.ParentComment == c.ID {
				thread.Replies = append(thread.Replies, r)
			}
		}
		threads = append(threads, thread)
	}
	return threads
}
