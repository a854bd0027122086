package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/models"
	"github.com/blogem/auth0-gateway/services"
	"github.com/blogem/auth0-gateway/userctx"
)

// maxRequestBytes bounds the inbound envelope
const maxRequestBytes = 1 << 20

// ManagementController handles action dispatch requests
type ManagementController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewManagementController creates a new management controller
func NewManagementController(services *services.Services, logger *zap.Logger) *ManagementController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManagementController{
		services: services,
		logger:   logger,
	}
}

// Dispatch handles POST /auth0-management
func (c *ManagementController) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req models.ManagementRequest

	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := c.services.Management.Handle(r.Context(), req.Action, req.Parameters)

	// Filled in for the audit middleware, if it is installed
	if entry := userctx.GetAuditEntry(r.Context()); entry != nil {
		entry.Action = req.Action
		entry.Method = result.Method
		entry.Path = result.Path
		entry.DurationMS = result.Duration.Milliseconds()
	}

	if err := writeJSON(w, result.StatusCode, result.Body); err != nil {
		c.logger.Error("failed to write response", zap.String("action", req.Action), zap.Error(err))
	}
}

// Actions handles GET /actions
func (c *ManagementController) Actions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.services.Management.Actions())
}
