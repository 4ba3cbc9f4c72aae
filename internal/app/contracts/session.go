package contracts

import (
	"anubha-web/internal/app/models"
	"context"
	"net/http"
)

type SessionManager interface {
	Load(ctx context.Context, r *http.Request) (*models.Session, error)
	Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, session *models.Session) error
}
