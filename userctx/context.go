package userctx

import (
	"context"

	"github.com/blogem/auth0-gateway/models"
)

// Context key type
type contextKey string

const callerKey contextKey = "caller"
const auditEntryKey contextKey = "audit_entry"

// SetCaller adds the authenticated caller's subject to request context
func SetCaller(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, callerKey, subject)
}

// GetCaller retrieves the caller subject from request context
func GetCaller(ctx context.Context) string {
	caller, ok := ctx.Value(callerKey).(string)
	if !ok || caller == "" {
		return "anonymous"
	}
	return caller
}

// SetAuditEntry attaches an audit entry that handlers fill in during the request
func SetAuditEntry(ctx context.Context, entry *models.AuditLogEntry) context.Context {
	return context.WithValue(ctx, auditEntryKey, entry)
}

// GetAuditEntry retrieves the in-progress audit entry, or nil when auditing is off
func GetAuditEntry(ctx context.Context) *models.AuditLogEntry {
	entry, _ := ctx.Value(auditEntryKey).(*models.AuditLogEntry)
	return entry
}
