package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// DraftFlush persists every pending doctor-notes draft before the connections close.
	DraftFlush func(ctx context.Context)
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.DraftFlush != nil {
		b.DraftFlush(ctx)
		log.Println("Successfully flushed pending drafts")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
