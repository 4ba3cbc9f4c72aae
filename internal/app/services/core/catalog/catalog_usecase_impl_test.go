package catalog

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogUsecase_EmbeddedServices(t *testing.T) {
	uc, err := NewCatalogUsecase(zap.NewNop())
	require.NoError(t, err)

	services := uc.Services()
	slugs := make([]string, 0, len(services))
	for _, service := range services {
		slugs = append(slugs, service.Slug)
		assert.Equal(t, "₹1000", service.FeeLabel, service.Slug)
		assert.NotEmpty(t, service.DescriptionHTML, service.Slug)
	}
	assert.Equal(t, []string{"weight-loss", "medical-management", "kids-nutrition", "wedding-glow", "corporate-plan"}, slugs)
}

func TestCatalogUsecase_FindBySlug(t *testing.T) {
	uc, err := NewCatalogUsecase(zap.NewNop())
	require.NoError(t, err)

	t.Run("weight loss carries both programs", func(t *testing.T) {
		service, err := uc.FindBySlug("weight-loss")
		require.NoError(t, err)
		assert.Equal(t, "Weight Loss Consultation", service.Title)
		require.Len(t, service.Programs, 2)
		assert.Equal(t, "6-10 kg", service.Programs[0].Outcome)
		assert.Equal(t, "18-20 kg", service.Programs[1].Outcome)
		assert.Contains(t, string(service.DescriptionHTML), "<strong>sustainable weight loss</strong>")
	})

	t.Run("markdown lists become html lists", func(t *testing.T) {
		service, err := uc.FindBySlug("medical-management")
		require.NoError(t, err)
		assert.Contains(t, string(service.DescriptionHTML), "<li>PCOS</li>")
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := uc.FindBySlug("keto-express")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("returned service is a copy", func(t *testing.T) {
		service, err := uc.FindBySlug("wedding-glow")
		require.NoError(t, err)
		service.Title = "changed"

		again, err := uc.FindBySlug("wedding-glow")
		require.NoError(t, err)
		assert.Equal(t, "Wedding Glow Consultation", again.Title)
	})
}

func TestNewCatalogUsecase_RejectsBadDocuments(t *testing.T) {
	_, err := newCatalogUsecase([]byte("services: [ {"), zap.NewNop())
	assert.Error(t, err)

	_, err = newCatalogUsecase([]byte("services:\n  - slug: a\n  - slug: a\n"), zap.NewNop())
	assert.Error(t, err)
}
