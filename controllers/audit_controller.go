package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/auth0-gateway/services"
)

// AuditController exposes the audit log
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// Index handles GET /audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	if !c.services.Audit.Enabled() {
		writeError(w, http.StatusNotFound, "audit log is disabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := c.services.Audit.Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load audit log: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
