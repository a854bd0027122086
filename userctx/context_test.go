package userctx

import (
	"context"
	"testing"

	"github.com/blogem/auth0-gateway/models"
)

func TestCaller(t *testing.T) {
	ctx := context.Background()
	if got := GetCaller(ctx); got != "anonymous" {
		t.Errorf("Expected anonymous caller, got %s", got)
	}

	ctx = SetCaller(ctx, "agent-42")
	if got := GetCaller(ctx); got != "agent-42" {
		t.Errorf("Expected agent-42, got %s", got)
	}
}

func TestAuditEntry(t *testing.T) {
	ctx := context.Background()
	if GetAuditEntry(ctx) != nil {
		t.Error("Expected no audit entry on a bare context")
	}

	entry := &models.AuditLogEntry{}
	ctx = SetAuditEntry(ctx, entry)
	GetAuditEntry(ctx).Action = "list_users"

	if entry.Action != "list_users" {
		t.Errorf("Expected handler updates to reach the shared entry, got %q", entry.Action)
	}
}
