package testimonials

import (
	"anubha-web/internal/app/contracts/mocks"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTestimonialUsecase_FindActive(t *testing.T) {
	t.Run("empty list renders nothing", func(t *testing.T) {
		backend := new(mocks.MockTestimonialBackend)
		backend.On("FindActive", mock.Anything).Return([]backend_dto.Testimonial{}, nil)

		testimonials := NewTestimonialUsecase(backend, zap.NewNop()).FindActive(context.Background())
		assert.Empty(t, testimonials)
	})

	t.Run("backend failure degrades to an empty list", func(t *testing.T) {
		backend := new(mocks.MockTestimonialBackend)
		backend.On("FindActive", mock.Anything).Return(nil, errors.New("connection refused"))

		testimonials := NewTestimonialUsecase(backend, zap.NewNop()).FindActive(context.Background())
		assert.NotNil(t, testimonials)
		assert.Empty(t, testimonials)
	})

	t.Run("public entries without an active flag are kept", func(t *testing.T) {
		backend := new(mocks.MockTestimonialBackend)
		backend.On("FindActive", mock.Anything).Return([]backend_dto.Testimonial{
			{ID: "t-1", Name: "Priya", IsActive: true},
			{ID: "t-2", Name: "Rahul"},
		}, nil)

		testimonials := NewTestimonialUsecase(backend, zap.NewNop()).FindActive(context.Background())
		require.Len(t, testimonials, 2)
		assert.Equal(t, "t-2", testimonials[1].ID)
	})
}

func TestTestimonialUsecase_Create(t *testing.T) {
	t.Run("trims and forwards the form with its image", func(t *testing.T) {
		backend := new(mocks.MockTestimonialBackend)
		image := &backend_dto.FilePart{FileName: "priya.jpg", ContentType: "image/jpeg", Content: []byte{0xff}}
		backend.On("Create", mock.Anything, mock.MatchedBy(func(upload *backend_dto.TestimonialUpload) bool {
			return upload.Name == "Priya" && upload.Text == "Lost 8 kg" && upload.Image == image
		})).Return(&backend_dto.Testimonial{ID: "t-1"}, nil)

		testimonial, err := NewTestimonialUsecase(backend, zap.NewNop()).Create(context.Background(), &requests.TestimonialForm{
			Name: "  Priya ",
			Text: "Lost 8 kg ",
		}, image)
		require.NoError(t, err)
		assert.Equal(t, "t-1", testimonial.ID)
	})

	t.Run("missing text is rejected", func(t *testing.T) {
		backend := new(mocks.MockTestimonialBackend)

		_, err := NewTestimonialUsecase(backend, zap.NewNop()).Create(context.Background(), &requests.TestimonialForm{Name: "Priya"}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.Fields, "text")
		backend.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
