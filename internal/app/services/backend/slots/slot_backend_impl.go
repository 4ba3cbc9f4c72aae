package slots

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"context"
	"net/url"

	"go.uber.org/zap"
)

type slotBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewSlotBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.SlotBackend {
	return &slotBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

func (b *slotBackend) FindAvailable(ctx context.Context, date, mode string) ([]backend_dto.Slot, error) {
	query := url.Values{}
	query.Set("date", date)
	if mode != "" {
		query.Set("mode", mode)
	}

	response := &backend_dto.SlotListResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   constvars.BackendSlotsAvailable,
		Query:  query,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}
