package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"careerkit/internal/models"
)

// GenerateRoadmap asks the AI for a career roadmap rendered as HTML.
// Upstream failures come back as a structured fallback snippet, not an
// error.
func (s *Service) GenerateRoadmap(ctx context.Context, jobTitle, level, timeRange string) (string, error) {
	if _, ok := identityFromContext(ctx); !ok {
		return "", ErrUnauthenticated
	}

	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return "", errors.WithMessage(ErrInvalidInput, "jobTitle is required")
	}
	if !models.ValidLevel(level) {
		return "", errors.WithMessage(ErrInvalidInput, "unknown level")
	}

	return s.AI.GenerateRoadmap(ctx, jobTitle, level, timeRange), nil
}

// SaveRoadmap stores a generated roadmap under the current user.
func (s *Service) SaveRoadmap(ctx context.Context, jobTitle, level, timeRange, content string) (*models.Roadmap, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" || level == "" || timeRange == "" || content == "" {
		return nil, errors.WithMessage(ErrInvalidInput, "missing required fields: jobTitle, level, timeRange, roadmapContent")
	}
	if !models.ValidLevel(level) {
		return nil, errors.WithMessage(ErrInvalidInput, "unknown level")
	}

	roadmap := models.Roadmap{
		JobTitle:  jobTitle,
		Level:     level,
		TimeRange: timeRange,
		Content:   content,
		UserID:    identity.UserID,
		CreatedBy: identity.Username,
	}
	if err := s.Store.CreateRoadmap(ctx, &roadmap); err != nil {
		return nil, err
	}
	roadmap.IsOwner = true
	return &roadmap, nil
}

// ListRoadmaps pages through roadmaps. The listing is public; the Mine
// filter requires a session. Each item carries an ownership flag for the
// requesting user.
func (s *Service) ListRoadmaps(ctx context.Context, filter models.RoadmapFilter, page, limit int) ([]models.Roadmap, int64, error) {
	identity, authenticated := identityFromContext(ctx)

	if filter.Mine {
		if !authenticated {
			return nil, 0, ErrUnauthenticated
		}
		filter.UserID = identity.UserID
	}

	page = normalizePage(page)
	limit = normalizePageSize(limit)

	roadmaps, total, err := s.Store.Roadmaps(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if authenticated {
		for i := range roadmaps {
			roadmaps[i].IsOwner = roadmaps[i].UserID == identity.UserID
		}
	}
	return roadmaps, total, nil
}

// GetRoadmap fetches one roadmap; anyone may read it.
func (s *Service) GetRoadmap(ctx context.Context, id string) (*models.Roadmap, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	roadmap, err := s.Store.Roadmap(ctx, oid)
	if err != nil {
		return nil, err
	}

	if identity, ok := identityFromContext(ctx); ok {
		roadmap.IsOwner = roadmap.UserID == identity.UserID
	}
	return roadmap, nil
}

// DeleteRoadmap removes one of the current user's roadmaps.
func (s *Service) DeleteRoadmap(ctx context.Context, id string) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Store.DeleteRoadmap(ctx, oid, identity.UserID)
}
