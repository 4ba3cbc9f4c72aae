package utils

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
)

// SessionID returns the visitor session id loaded by the session middleware.
func SessionID(ctx context.Context) (string, error) {
	sessionID := models.SessionIDFromContext(ctx)
	if sessionID == "" {
		return "", exceptions.ErrSessionMissing(nil)
	}
	return sessionID, nil
}

// AttachField shows a failure next to one form input unless the backend already named the fields.
func AttachField(err error, field string) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) || len(customErr.Fields) > 0 {
		return err
	}
	customErr.Fields = map[string]string{field: customErr.ClientMessage}
	return err
}
