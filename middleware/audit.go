package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/models"
	"github.com/blogem/auth0-gateway/userctx"
)

// AuditRecorder persists audit entries
type AuditRecorder interface {
	Record(entry *models.AuditLogEntry) error
}

// AuditLogger middleware records every dispatched management action.
// Handlers fill in the action details through userctx.GetAuditEntry.
// When pending is non-nil each write is tracked on it, so callers can wait
// for outstanding entries before closing the store.
func AuditLogger(recorder AuditRecorder, logger *zap.Logger, pending *sync.WaitGroup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := &models.AuditLogEntry{
				Timestamp: time.Now().UTC(),
				Caller:    userctx.GetCaller(r.Context()),
				UserAgent: r.UserAgent(),
				IPAddress: getIPAddress(r),
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(userctx.SetAuditEntry(r.Context(), entry)))

			// Envelopes rejected before dispatch carry no action
			if entry.Action == "" {
				return
			}
			entry.StatusCode = ww.Status()

			// Log asynchronously to avoid blocking request
			if pending != nil {
				pending.Add(1)
			}
			go func() {
				if pending != nil {
					defer pending.Done()
				}
				if err := recorder.Record(entry); err != nil {
					logger.Error("failed to create audit log", zap.String("action", entry.Action), zap.Error(err))
				}
			}()
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
