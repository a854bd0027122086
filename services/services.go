package services

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/authenticator"
	"github.com/blogem/auth0-gateway/repositories"
)

// Services holds all service instances
type Services struct {
	Management ManagementService
	Audit      AuditService
}

// NewServices creates and initializes all service instances
func NewServices(managementURL string, tokens authenticator.TokenProvider, httpClient *http.Client, repos *repositories.Repositories, logger *zap.Logger) *Services {
	return &Services{
		Management: NewManagementService(managementURL, tokens, httpClient, logger.Named("management")),
		Audit:      NewAuditService(repos.Audit),
	}
}
