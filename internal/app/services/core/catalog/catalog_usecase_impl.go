package catalog

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

type catalogUsecase struct {
	services []responses.Service
	bySlug   map[string]int
	Log      *zap.Logger
}

// NewCatalogUsecase parses and renders the embedded catalog once, at startup.
func NewCatalogUsecase(logger *zap.Logger) (contracts.CatalogUsecase, error) {
	return newCatalogUsecase(servicesYAML, logger)
}

func newCatalogUsecase(document []byte, logger *zap.Logger) (*catalogUsecase, error) {
	catalog := &models.Catalog{}
	err := yaml.Unmarshal(document, catalog)
	if err != nil {
		return nil, exceptions.ErrCannotParseYAML(err)
	}

	uc := &catalogUsecase{
		services: make([]responses.Service, 0, len(catalog.Services)),
		bySlug:   make(map[string]int, len(catalog.Services)),
		Log:      logger,
	}

	markdown := goldmark.New()
	for _, service := range catalog.Services {
		if _, exists := uc.bySlug[service.Slug]; exists {
			return nil, exceptions.ErrCannotParseYAML(fmt.Errorf("duplicate slug %q", service.Slug))
		}

		var rendered bytes.Buffer
		err := markdown.Convert([]byte(service.Description), &rendered)
		if err != nil {
			return nil, exceptions.ErrRenderMarkdown(err)
		}

		uc.bySlug[service.Slug] = len(uc.services)
		uc.services = append(uc.services, mapService(service, template.HTML(rendered.String())))
	}

	logger.Info("catalogUsecase loaded services",
		zap.Int(constvars.LoggingCountKey, len(uc.services)),
	)
	return uc, nil
}

func mapService(service models.Service, description template.HTML) responses.Service {
	programs := make([]responses.Program, 0, len(service.Programs))
	for _, program := range service.Programs {
		programs = append(programs, responses.Program{
			Name:     program.Name,
			Duration: program.Duration,
			Outcome:  program.Outcome,
			Price:    program.Price,
		})
	}

	return responses.Service{
		Slug:            service.Slug,
		Title:           service.Title,
		Summary:         service.Summary,
		Image:           service.Image,
		DescriptionHTML: description,
		Fee:             service.Fee,
		FeeLabel:        FeeLabel(service.Fee),
		Duration:        service.Duration,
		Programs:        programs,
	}
}

func FeeLabel(fee int) string {
	return fmt.Sprintf("%s%d", constvars.CurrencySymbol, fee)
}

// Services returns a copy so callers can't reorder the catalog.
func (uc *catalogUsecase) Services() []responses.Service {
	services := make([]responses.Service, len(uc.services))
	copy(services, uc.services)
	return services
}

func (uc *catalogUsecase) FindBySlug(slug string) (*responses.Service, error) {
	index, ok := uc.bySlug[slug]
	if !ok {
		uc.Log.Info("catalogUsecase.FindBySlug unknown slug",
			zap.String(constvars.LoggingSlugKey, slug),
		)
		return nil, exceptions.ErrPlanNotFound(nil)
	}

	service := uc.services[index]
	return &service, nil
}
