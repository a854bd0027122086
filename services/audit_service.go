package services

import (
	"fmt"

	"github.com/blogem/auth0-gateway/models"
	"github.com/blogem/auth0-gateway/repositories"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditService interface defines access to the record of dispatched calls
type AuditService interface {
	Enabled() bool
	Record(entry *models.AuditLogEntry) error
	Recent(limit int) ([]models.AuditLogEntry, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service. A nil repository disables auditing.
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Enabled reports whether audit entries are persisted
func (s *auditService) Enabled() bool {
	return s.auditRepo != nil
}

// Record stores one audit entry; it is a no-op when auditing is disabled
func (s *auditService) Record(entry *models.AuditLogEntry) error {
	if s.auditRepo == nil {
		return nil
	}
	if entry.Action == "" {
		return fmt.Errorf("audit entry without action")
	}
	return s.auditRepo.Create(entry)
}

// Recent returns the newest entries first. Limits outside 1..500 fall back to the default or the maximum.
func (s *auditService) Recent(limit int) ([]models.AuditLogEntry, error) {
	if s.auditRepo == nil {
		return nil, fmt.Errorf("audit log is disabled")
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.auditRepo.Recent(limit)
}
