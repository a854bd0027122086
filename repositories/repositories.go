package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces.
// Audit is nil when no database is configured.
type Repositories struct {
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	if db == nil {
		return &Repositories{}
	}

	return &Repositories{
		Audit: NewAuditRepository(db),
	}
}
