package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"careerkit/internal/models"
)

// Chat relays a message to the career assistant. The reply is always a
// usable string; upstream failures are absorbed into a canned apology.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.WithMessage(ErrInvalidInput, "message is required")
	}
	return s.AI.Chat(ctx, message), nil
}

// GenerateChallenge produces a coding-practice problem for the topic.
func (s *Service) GenerateChallenge(ctx context.Context, topic string) (models.Challenge, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Challenge{}, errors.WithMessage(ErrInvalidInput, "topic is required")
	}
	return s.AI.GenerateChallenge(ctx, topic), nil
}
