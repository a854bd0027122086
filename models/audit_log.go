package models

import "time"

// AuditLogEntry represents a single dispatched management call
type AuditLogEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Caller     string    `json:"caller"`
	Action     string    `json:"action"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMS int64     `json:"duration_ms"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
}
