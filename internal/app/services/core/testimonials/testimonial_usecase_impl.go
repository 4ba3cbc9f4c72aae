package testimonials

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type testimonialUsecase struct {
	TestimonialBackend contracts.TestimonialBackend
	Log                *zap.Logger
}

func NewTestimonialUsecase(testimonialBackend contracts.TestimonialBackend, logger *zap.Logger) contracts.TestimonialUsecase {
	return &testimonialUsecase{
		TestimonialBackend: testimonialBackend,
		Log:                logger,
	}
}

// FindActive returns the public list as served. It never fails; the home page
// leaves the section out when nothing comes back.
func (uc *testimonialUsecase) FindActive(ctx context.Context) []backend_dto.Testimonial {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	testimonials, err := uc.TestimonialBackend.FindActive(ctx)
	if err != nil {
		uc.Log.Warn("testimonialUsecase.FindActive falling back to empty list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return []backend_dto.Testimonial{}
	}

	if testimonials == nil {
		return []backend_dto.Testimonial{}
	}
	return testimonials
}

func (uc *testimonialUsecase) FindAll(ctx context.Context) ([]backend_dto.Testimonial, error) {
	return uc.TestimonialBackend.FindAll(ctx)
}

func (uc *testimonialUsecase) Create(ctx context.Context, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("testimonialUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeTestimonialForm(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	testimonial, err := uc.TestimonialBackend.Create(ctx, upload(request, image))
	if err != nil {
		uc.Log.Error("testimonialUsecase.Create error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("testimonialUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return testimonial, nil
}

func (uc *testimonialUsecase) Update(ctx context.Context, testimonialID string, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("testimonialUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeTestimonialForm(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	testimonial, err := uc.TestimonialBackend.Update(ctx, testimonialID, upload(request, image))
	if err != nil {
		uc.Log.Error("testimonialUsecase.Update error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return testimonial, nil
}

func (uc *testimonialUsecase) Delete(ctx context.Context, testimonialID string) error {
	return uc.TestimonialBackend.Delete(ctx, testimonialID)
}

func upload(request *requests.TestimonialForm, image *backend_dto.FilePart) *backend_dto.TestimonialUpload {
	return &backend_dto.TestimonialUpload{
		Name:     request.Name,
		Text:     request.Text,
		IsActive: request.IsActive,
		Image:    image,
	}
}
