package middlewares

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionManager contracts.SessionManager,
	authUsecase contracts.AuthUsecase,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionManager: sessionManager,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
