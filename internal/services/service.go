package services

import (
	"github.com/hako/branca"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"careerkit/internal/ai"
	"careerkit/internal/storage"
)

// Error taxonomy. Handlers map these onto HTTP status codes; everything
// else surfaces as an internal error.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
)

// Service contains core logic
type Service struct {
	Store  storage.Storage
	Codec  *branca.Branca
	AI     *ai.Generator
	Log    *logrus.Logger
	Origin string
}

func New(store storage.Storage, cdc *branca.Branca, gen *ai.Generator, log *logrus.Logger, origin string) *Service {
	return &Service{
		store,
		cdc,
		gen,
		log,
		origin,
	}
}
