package services

import (
	"context"
	"io"
	"testing"

	"github.com/hako/branca"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"careerkit/internal/ai"
	"careerkit/internal/config"
	"careerkit/internal/models"
	"careerkit/internal/storage"
)

const testBrancaKey = "abcd1234abcd1234abcd1234abcd1234"

func testService(t *testing.T) *Service {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	codec := branca.NewBranca(testBrancaKey)
	codec.SetTTL(uint32(TokenLifeSpan.Seconds()))

	gen := ai.NewGenerator(config.Config{}, log)
	return New(storage.NewMemoryStorage(), codec, gen, log, "http://localhost:3000")
}

func asUser(identity models.Identity) context.Context {
	return context.WithValue(context.Background(), KeyAuthIdentity, identity)
}

func testIdentity(username string) models.Identity {
	return models.Identity{
		UserID:   primitive.NewObjectID(),
		Email:    username + "@example.com",
		Username: username,
	}
}
