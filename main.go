package main

import (
	"context"
	"net/http"
	"os"

	"github.com/hako/branca"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"careerkit/internal/ai"
	"careerkit/internal/config"
	"careerkit/internal/handlers"
	"careerkit/internal/services"
	"careerkit/internal/storage"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var store storage.Storage
	if os.Getenv("STORAGE_TYPE") == "memory" {
		store = storage.NewMemoryStorage()
	} else {
		mongo, err := storage.Open(context.Background(), cfg.MongoURI, cfg.Database, log)
		if err != nil {
			log.WithError(err).Fatal("could not connect to db")
			return
		}
		store = mongo
	}
	defer store.Close(context.Background())

	codec := branca.NewBranca(cfg.TokenKey)
	codec.SetTTL(uint32(cfg.TokenTTL.Seconds()))

	gen := ai.NewGenerator(cfg, log)
	s := services.New(store, codec, gen, log, cfg.Origin)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	h := c.Handler(handlers.New(s))

	log.Infof("app running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		log.WithError(err).Fatal("could not start app")
	}
}
