package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/models"
	"github.com/blogem/auth0-gateway/services"
)

// writeJSON encodes data as the response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// writeError writes the standard error envelope
func writeError(w http.ResponseWriter, statusCode int, message string) error {
	return writeJSON(w, statusCode, models.ErrorResponse{Error: message})
}

// Controllers holds all controller instances
type Controllers struct {
	Management *ManagementController
	Audit      *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		Management: NewManagementController(services, logger),
		Audit:      NewAuditController(services),
	}
}
