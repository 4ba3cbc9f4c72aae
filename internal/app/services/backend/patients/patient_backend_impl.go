package patients

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type patientBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewPatientBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.PatientBackend {
	return &patientBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

func (b *patientBackend) FindMine(ctx context.Context) ([]backend_dto.Patient, error) {
	response := &backend_dto.PatientListResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   constvars.BackendPatientsMe,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Patients, nil
}

func (b *patientBackend) Create(ctx context.Context, request *backend_dto.CreatePatientRequest) (*backend_dto.Patient, error) {
	response := &backend_dto.CreatePatientResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPost,
		Path:   constvars.BackendPatients,
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Patient, nil
}

func (b *patientBackend) CreateRecall(ctx context.Context, request *backend_dto.CreateRecallRequest) (*backend_dto.RecallDetail, error) {
	err := utils.RequireFields(constvars.ErrClientPatientIDRequired, request.PatientID)
	if err != nil {
		return nil, err
	}
	if len(request.Entries) == 0 {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientRecallEntriesRequired)
	}

	response := &backend_dto.CreateRecallResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPost,
		Path:   constvars.BackendPatientsRecall,
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (b *patientBackend) AttachFiles(ctx context.Context, patientID string, request *backend_dto.AttachFilesRequest) error {
	err := utils.RequireFields(constvars.ErrClientPatientIDRequired, patientID)
	if err != nil {
		return err
	}
	if len(request.FileIDs) == 0 {
		return exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientFileIDsRequired)
	}

	return b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPatch,
		Path:   fmt.Sprintf("%s/%s/files", constvars.BackendPatients, url.PathEscape(patientID)),
		Body:   request,
	}, nil)
}

func (b *patientBackend) DeleteFile(ctx context.Context, fileID string) error {
	err := utils.RequireFields(constvars.ErrClientFileIDRequired, fileID)
	if err != nil {
		return err
	}

	return b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodDelete,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendPatientsFile, url.PathEscape(fileID)),
	}, nil)
}

func (b *patientBackend) UploadImages(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error) {
	if len(files) == 0 {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientFilesRequired)
	}

	parts := make([]backend_dto.FilePart, len(files))
	for i, file := range files {
		file.FieldName = constvars.MultipartFieldFiles
		parts[i] = file
	}

	response := &backend_dto.UploadResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.BackendUploadImage,
		Multipart: &gateway.Multipart{Files: parts},
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Files, nil
}
