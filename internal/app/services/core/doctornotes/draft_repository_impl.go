package doctornotes

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/constvars"
	"context"
)

type draftRepository struct {
	ClientStorage contracts.ClientStorage
}

// NewDraftRepository stores drafts in the visitor's client storage, one key per appointment.
func NewDraftRepository(clientStorage contracts.ClientStorage) contracts.DraftRepository {
	return &draftRepository{ClientStorage: clientStorage}
}

func draftKey(appointmentID string) string {
	return constvars.StorageKeyDoctorNotesPrefix + appointmentID
}

// Find returns nil when nothing was saved for the appointment.
func (r *draftRepository) Find(ctx context.Context, sessionID, appointmentID string) (*models.DoctorNotesDraft, error) {
	draft := &models.DoctorNotesDraft{}
	found, err := r.ClientStorage.Get(ctx, sessionID, draftKey(appointmentID), draft)
	if err != nil || !found {
		return nil, err
	}
	return draft, nil
}

func (r *draftRepository) Save(ctx context.Context, sessionID, appointmentID string, draft *models.DoctorNotesDraft) error {
	return r.ClientStorage.Set(ctx, sessionID, draftKey(appointmentID), draft)
}

func (r *draftRepository) Delete(ctx context.Context, sessionID, appointmentID string) error {
	return r.ClientStorage.Remove(ctx, sessionID, draftKey(appointmentID))
}
