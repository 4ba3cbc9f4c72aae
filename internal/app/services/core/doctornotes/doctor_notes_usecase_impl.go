package doctornotes

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const persistTimeout = 5 * time.Second

// workingCopy is the live form for one appointment in one visitor session.
// Every field is guarded by doctorNotesUsecase.mu.
type workingCopy struct {
	sessionID     string
	appointmentID string
	formData      json.RawMessage
	attachment    *models.DraftAttachment
	lastSaved     *time.Time
	dirty         bool
	saving        bool
	generation    uint64
	timer         *time.Timer
}

func newWorkingCopy(sessionID, appointmentID string, stored *models.DoctorNotesDraft) *workingCopy {
	wc := &workingCopy{
		sessionID:     sessionID,
		appointmentID: appointmentID,
		formData:      cloneDocument(nil),
	}
	if stored == nil {
		return wc
	}
	if isObject(stored.FormData) {
		wc.formData = cloneDocument(stored.FormData)
	}
	if !stored.LastSaved.IsZero() {
		lastSaved := stored.LastSaved
		wc.lastSaved = &lastSaved
	}
	if stored.Attachment != nil {
		attachment := *stored.Attachment
		wc.attachment = &attachment
	}
	return wc
}

func (wc *workingCopy) status() *responses.DraftStatus {
	status := &responses.DraftStatus{
		AppointmentID:     wc.appointmentID,
		FormData:          cloneDocument(wc.formData),
		HasUnsavedChanges: wc.dirty,
		IsAutoSaving:      wc.saving,
	}
	if wc.lastSaved != nil {
		lastSaved := *wc.lastSaved
		status.LastSaved = &lastSaved
	}
	if wc.attachment != nil {
		status.Attachment = &responses.StagedAttachment{
			ObjectName:  wc.attachment.ObjectName,
			FileName:    wc.attachment.FileName,
			ContentType: wc.attachment.ContentType,
			Size:        wc.attachment.Size,
		}
	}
	return status
}

type doctorNotesUsecase struct {
	DoctorNotesBackend contracts.DoctorNotesBackend
	DraftRepository    contracts.DraftRepository
	ObjectStorage      contracts.ObjectStorage
	Log                *zap.Logger
	AutoSaveDelay      time.Duration
	now                func() time.Time

	mu     sync.Mutex
	drafts map[string]*workingCopy
}

func NewDoctorNotesUsecase(
	doctorNotesBackend contracts.DoctorNotesBackend,
	draftRepository contracts.DraftRepository,
	objectStorage contracts.ObjectStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorNotesUsecase {
	delay := time.Duration(internalConfig.Booking.DoctorNotesAutoSaveInMillis) * time.Millisecond
	if delay <= 0 {
		delay = constvars.DoctorNotesAutoSaveDelay
	}
	return &doctorNotesUsecase{
		DoctorNotesBackend: doctorNotesBackend,
		DraftRepository:    draftRepository,
		ObjectStorage:      objectStorage,
		Log:                logger,
		AutoSaveDelay:      delay,
		now:                time.Now,
		drafts:             make(map[string]*workingCopy),
	}
}

func copyKey(sessionID, appointmentID string) string {
	return sessionID + "/" + appointmentID
}

func attachmentPrefix(sessionID, appointmentID string) string {
	return constvars.ObjectDraftAttachmentPrefix + appointmentID + "/" + sessionID + "/"
}

func (uc *doctorNotesUsecase) session(ctx context.Context, appointmentID string) (string, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return "", err
	}
	return utils.SessionID(ctx)
}

// workingCopy returns the live form, reading the saved draft the first time it is needed.
func (uc *doctorNotesUsecase) workingCopy(ctx context.Context, sessionID, appointmentID string) (*workingCopy, error) {
	key := copyKey(sessionID, appointmentID)

	uc.mu.Lock()
	wc, ok := uc.drafts[key]
	uc.mu.Unlock()
	if ok {
		return wc, nil
	}

	stored, err := uc.DraftRepository.Find(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}
	loaded := newWorkingCopy(sessionID, appointmentID, stored)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if wc, ok := uc.drafts[key]; ok {
		return wc, nil
	}
	uc.drafts[key] = loaded
	return loaded, nil
}

// scheduleSave restarts the debounce timer. The caller holds uc.mu.
func (uc *doctorNotesUsecase) scheduleSave(wc *workingCopy) {
	wc.dirty = true
	wc.saving = true
	wc.generation++
	generation := wc.generation

	if wc.timer != nil {
		wc.timer.Stop()
	}
	wc.timer = time.AfterFunc(uc.AutoSaveDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		err := uc.persist(ctx, wc, generation)
		if err != nil {
			uc.Log.Error("doctorNotesUsecase.autoSave error saving draft",
				zap.String(constvars.LoggingSessionIDKey, wc.sessionID),
				zap.String(constvars.LoggingAppointmentIDKey, wc.appointmentID),
				zap.Error(err),
			)
		}
	})
}

// persist writes the working copy if it still holds the edit numbered generation.
func (uc *doctorNotesUsecase) persist(ctx context.Context, wc *workingCopy, generation uint64) error {
	uc.mu.Lock()
	if uc.drafts[copyKey(wc.sessionID, wc.appointmentID)] != wc || wc.generation != generation {
		uc.mu.Unlock()
		return nil
	}
	savedAt := uc.now()
	draft := &models.DoctorNotesDraft{
		FormData:  cloneDocument(wc.formData),
		LastSaved: savedAt,
	}
	if wc.attachment != nil {
		attachment := *wc.attachment
		draft.Attachment = &attachment
	}
	uc.mu.Unlock()

	err := uc.DraftRepository.Save(ctx, wc.sessionID, wc.appointmentID, draft)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if wc.generation != generation {
		return err
	}
	wc.saving = false
	wc.timer = nil
	if err != nil {
		return err
	}
	wc.dirty = false
	wc.lastSaved = &savedAt
	return nil
}

func (uc *doctorNotesUsecase) flushCopy(ctx context.Context, wc *workingCopy) error {
	uc.mu.Lock()
	dirty := wc.dirty
	generation := wc.generation
	if dirty && wc.timer != nil {
		wc.timer.Stop()
	}
	uc.mu.Unlock()

	if !dirty {
		return nil
	}
	return uc.persist(ctx, wc, generation)
}

// Load merges the server's saved notes over the local draft, server values winning per top-level key.
func (uc *doctorNotesUsecase) Load(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorNotesUsecase.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	key := copyKey(sessionID, appointmentID)

	uc.mu.Lock()
	existing := uc.drafts[key]
	uc.mu.Unlock()
	if existing != nil {
		err = uc.flushCopy(ctx, existing)
		if err != nil {
			return nil, err
		}
	}

	notes, err := uc.DoctorNotesBackend.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("doctorNotesUsecase.Load error fetching server notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	stored, err := uc.DraftRepository.Find(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	var local, server json.RawMessage
	if stored != nil {
		local = stored.FormData
	}
	if notes != nil {
		server = notes.FormData
	}
	merged, err := MergeServerWins(local, server)
	if err != nil {
		return nil, err
	}

	wc := newWorkingCopy(sessionID, appointmentID, stored)
	wc.formData = merged

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if previous := uc.drafts[key]; previous != nil && previous.timer != nil {
		previous.timer.Stop()
	}
	uc.drafts[key] = wc

	uc.Log.Info("doctorNotesUsecase.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("from_server", notes != nil),
		zap.Bool("from_draft", stored != nil),
	)
	return wc.status(), nil
}

func (uc *doctorNotesUsecase) Status(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return wc.status(), nil
}

func (uc *doctorNotesUsecase) UpdateFormData(ctx context.Context, appointmentID string, request *requests.UpdateDraftValue) (*responses.DraftStatus, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	next, err := SetValue(wc.formData, request.Path, request.Value)
	if err != nil {
		return nil, err
	}
	wc.formData = next
	uc.scheduleSave(wc)
	return wc.status(), nil
}

// GetFormValue answers null for a path that holds nothing.
func (uc *doctorNotesUsecase) GetFormValue(ctx context.Context, appointmentID string, fieldPath []string) (*responses.DraftValue, error) {
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	value, found, err := GetValue(wc.formData, fieldPath)
	uc.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !found {
		value = json.RawMessage(`null`)
	}
	return &responses.DraftValue{Path: fieldPath, Value: value}, nil
}

func (uc *doctorNotesUsecase) Flush(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	err = uc.flushCopy(ctx, wc)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return wc.status(), nil
}

// FlushAll saves every draft with unsaved edits, across all sessions.
func (uc *doctorNotesUsecase) FlushAll(ctx context.Context) error {
	uc.mu.Lock()
	pending := make([]*workingCopy, 0, len(uc.drafts))
	for _, wc := range uc.drafts {
		if wc.dirty {
			pending = append(pending, wc)
		}
	}
	uc.mu.Unlock()

	var errs []error
	for _, wc := range pending {
		err := uc.flushCopy(ctx, wc)
		if err != nil {
			uc.Log.Error("doctorNotesUsecase.FlushAll error saving draft",
				zap.String(constvars.LoggingAppointmentIDKey, wc.appointmentID),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}

	uc.Log.Info("doctorNotesUsecase.FlushAll finished",
		zap.Int("drafts", len(pending)),
		zap.Int("failed", len(errs)),
	)
	return errors.Join(errs...)
}

// ClearFormData drops the live form, the saved draft and any staged attachment.
func (uc *doctorNotesUsecase) ClearFormData(ctx context.Context, appointmentID string) error {
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return err
	}
	key := copyKey(sessionID, appointmentID)

	uc.mu.Lock()
	if wc, ok := uc.drafts[key]; ok {
		if wc.timer != nil {
			wc.timer.Stop()
		}
		wc.generation++
		delete(uc.drafts, key)
	}
	uc.mu.Unlock()

	err = uc.DraftRepository.Delete(ctx, sessionID, appointmentID)
	if err != nil {
		return err
	}
	return uc.ObjectStorage.RemovePrefix(ctx, attachmentPrefix(sessionID, appointmentID))
}

// StageAttachment keeps the diet chart in object storage until the notes are submitted.
func (uc *doctorNotesUsecase) StageAttachment(ctx context.Context, appointmentID string, file *backend_dto.FilePart) (*responses.DraftStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if file == nil || len(file.Content) == 0 {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientFilesRequired)
	}
	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	objectName := attachmentPrefix(sessionID, appointmentID) + uuid.NewString() + path.Ext(file.FileName)
	err = uc.ObjectStorage.PutObject(ctx, objectName, file.ContentType, bytes.NewReader(file.Content), int64(len(file.Content)))
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	previous := wc.attachment
	wc.attachment = &models.DraftAttachment{
		ObjectName:  objectName,
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Size:        int64(len(file.Content)),
	}
	uc.scheduleSave(wc)
	status := wc.status()
	uc.mu.Unlock()

	if previous != nil {
		err = uc.ObjectStorage.RemovePrefix(ctx, previous.ObjectName)
		if err != nil {
			uc.Log.Warn("doctorNotesUsecase.StageAttachment cannot remove replaced attachment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return status, nil
}

// Submit sends the notes to the backend. A final submission clears the draft.
func (uc *doctorNotesUsecase) Submit(ctx context.Context, appointmentID string, request *requests.SubmitDoctorNotes, dietChart *backend_dto.FilePart) (*backend_dto.DoctorNotes, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorNotesUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Bool("is_draft", request.IsDraft),
	)

	sessionID, err := uc.session(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	wc, err := uc.workingCopy(ctx, sessionID, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	formData := cloneDocument(wc.formData)
	var attachment *models.DraftAttachment
	if wc.attachment != nil {
		staged := *wc.attachment
		attachment = &staged
	}
	uc.mu.Unlock()

	err = ValidateDocument(formData)
	if err != nil {
		return nil, err
	}

	if dietChart == nil && attachment != nil {
		content, err := uc.ObjectStorage.GetObject(ctx, attachment.ObjectName)
		if err != nil {
			return nil, err
		}
		dietChart = &backend_dto.FilePart{
			FileName:    attachment.FileName,
			ContentType: attachment.ContentType,
			Content:     content,
		}
	}

	notes, err := uc.DoctorNotesBackend.Save(ctx, &backend_dto.SaveDoctorNotesRequest{
		AppointmentID: appointmentID,
		FormData:      formData,
		IsDraft:       request.IsDraft,
		DietChart:     dietChart,
	})
	if err != nil {
		uc.Log.Error("doctorNotesUsecase.Submit error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if request.IsDraft {
		err = uc.flushCopy(ctx, wc)
	} else {
		err = uc.ClearFormData(ctx, appointmentID)
	}
	if err != nil {
		uc.Log.Warn("doctorNotesUsecase.Submit saved but local draft not updated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorNotesUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return notes, nil
}
