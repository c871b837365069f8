package services

import (
	"context"

	"github.com/pkg/errors"

	"careerkit/internal/ai"
	"careerkit/internal/models"
)

// GenerateResume runs the AI resume builder over the submitted details.
// The result is never an upstream error: a malformed model reply degrades
// to a placeholder summary with no sections.
func (s *Service) GenerateResume(ctx context.Context, input ai.ResumeInput) (models.GeneratedResume, error) {
	if _, ok := identityFromContext(ctx); !ok {
		return models.GeneratedResume{}, ErrUnauthenticated
	}
	if input.PersonalInfo.Name == "" || input.Skills == "" {
		return models.GeneratedResume{}, errors.WithMessage(ErrInvalidInput, "missing required fields")
	}

	return s.AI.GenerateResume(ctx, input), nil
}

// SaveResume stores a generated resume under the current user.
func (s *Service) SaveResume(ctx context.Context, resume models.Resume) (*models.Resume, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if resume.PersonalInfo.Name == "" || resume.GeneratedContent.Summary == "" {
		return nil, errors.WithMessage(ErrInvalidInput, "missing required fields: personalInfo, generatedContent")
	}

	resume.UserID = identity.UserID
	resume.CreatedBy = identity.Username
	if err := s.Store.CreateResume(ctx, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListResumes pages through the current user's resumes, newest first.
func (s *Service) ListResumes(ctx context.Context, page, limit int) ([]models.Resume, int64, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return nil, 0, ErrUnauthenticated
	}

	page = normalizePage(page)
	limit = normalizePageSize(limit)
	return s.Store.Resumes(ctx, identity.UserID, page, limit)
}

// DeleteResume removes one of the current user's resumes.
func (s *Service) DeleteResume(ctx context.Context, id string) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Store.DeleteResume(ctx, oid, identity.UserID)
}
