package contracts

import (
	"anubha-web/internal/app/models"
	"context"
	"io"
)

// ClientStorage is the per-visitor key/value store that replaces browser local storage.
type ClientStorage interface {
	Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	Remove(ctx context.Context, sessionID string, keys ...string) error
}

type ObjectStorage interface {
	PutObject(ctx context.Context, objectName, contentType string, content io.Reader, size int64) error
	GetObject(ctx context.Context, objectName string) ([]byte, error)
	RemovePrefix(ctx context.Context, prefix string) error
}

type DraftRepository interface {
	Find(ctx context.Context, sessionID, appointmentID string) (*models.DoctorNotesDraft, error)
	Save(ctx context.Context, sessionID, appointmentID string, draft *models.DoctorNotesDraft) error
	Delete(ctx context.Context, sessionID, appointmentID string) error
}
