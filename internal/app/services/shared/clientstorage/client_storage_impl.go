package clientstorage

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// clientStorage keeps each visitor's keys in one Redis hash named after the session id.
type clientStorage struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	TTL             time.Duration
}

func NewClientStorage(redisRepository contracts.RedisRepository, logger *zap.Logger, ttl time.Duration) contracts.ClientStorage {
	return &clientStorage{
		RedisRepository: redisRepository,
		Log:             logger,
		TTL:             ttl,
	}
}

func hashKey(sessionID string) string {
	return constvars.RedisClientStoragePrefix + sessionID
}

// Get decodes the stored value into dest. A stored value that no longer decodes is treated as absent.
func (s *clientStorage) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	raw, err := s.RedisRepository.GetField(ctx, hashKey(sessionID), key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}

	err = json.Unmarshal([]byte(raw), dest)
	if err != nil {
		s.Log.Warn("clientStorage.Get discarding undecodable value",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

func (s *clientStorage) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	if sessionID == "" {
		return exceptions.ErrSessionMissing(nil)
	}
	return s.RedisRepository.SetField(ctx, hashKey(sessionID), key, value, s.TTL)
}

func (s *clientStorage) Remove(ctx context.Context, sessionID string, keys ...string) error {
	return s.RedisRepository.DeleteFields(ctx, hashKey(sessionID), keys...)
}
