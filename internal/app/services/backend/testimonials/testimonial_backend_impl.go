package testimonials

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type testimonialBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewTestimonialBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.TestimonialBackend {
	return &testimonialBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

func (b *testimonialBackend) FindActive(ctx context.Context) ([]backend_dto.Testimonial, error) {
	return b.list(ctx, constvars.BackendTestimonials)
}

func (b *testimonialBackend) FindAll(ctx context.Context) ([]backend_dto.Testimonial, error) {
	return b.list(ctx, constvars.BackendTestimonialsAdmin)
}

func (b *testimonialBackend) list(ctx context.Context, path string) ([]backend_dto.Testimonial, error) {
	response := &backend_dto.TestimonialListResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   path,
	}, response)
	if err != nil {
		return nil, err
	}
	if !response.Success || response.Testimonials == nil {
		return []backend_dto.Testimonial{}, nil
	}
	return response.Testimonials, nil
}

func (b *testimonialBackend) Create(ctx context.Context, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error) {
	response := &backend_dto.TestimonialResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.BackendTestimonialsAdmin,
		Multipart: testimonialMultipart(upload),
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Testimonial, nil
}

func (b *testimonialBackend) Update(ctx context.Context, testimonialID string, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error) {
	err := utils.RequireFields(constvars.ErrClientTestimonialIDRequired, testimonialID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.TestimonialResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method:    constvars.MethodPut,
		Path:      fmt.Sprintf("%s/%s", constvars.BackendTestimonialsAdmin, url.PathEscape(testimonialID)),
		Multipart: testimonialMultipart(upload),
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Testimonial, nil
}

func (b *testimonialBackend) Delete(ctx context.Context, testimonialID string) error {
	err := utils.RequireFields(constvars.ErrClientTestimonialIDRequired, testimonialID)
	if err != nil {
		return err
	}

	return b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodDelete,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendTestimonialsAdmin, url.PathEscape(testimonialID)),
	}, nil)
}

func testimonialMultipart(upload *backend_dto.TestimonialUpload) *gateway.Multipart {
	multipart := &gateway.Multipart{
		Fields: []gateway.Field{
			{Name: constvars.MultipartFieldName, Value: upload.Name},
			{Name: constvars.MultipartFieldText, Value: upload.Text},
		},
	}
	if upload.IsActive != nil {
		multipart.Fields = append(multipart.Fields, gateway.Field{
			Name:  constvars.MultipartFieldIsActive,
			Value: strconv.FormatBool(*upload.IsActive),
		})
	}
	if upload.Image != nil {
		image := *upload.Image
		image.FieldName = constvars.MultipartFieldImage
		multipart.Files = []backend_dto.FilePart{image}
	}
	return multipart
}
