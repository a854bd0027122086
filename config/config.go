// Package config loads gateway settings from the environment.
//
// Environment Variables:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - AUTH0_DOMAIN: Tenant domain, e.g. example.eu.auth0.com (required)
//   - AUTH0_CLIENT_ID: Machine-to-machine client ID (required)
//   - AUTH0_CLIENT_SECRET: Machine-to-machine client secret (required)
//   - AUTH0_AUDIENCE: Token audience (default: https://{domain}/api/v2/)
//   - AUTH0_TOKEN_URL: Token endpoint (default: https://{domain}/oauth/token)
//   - AUTH0_MANAGEMENT_URL: Management API base URL (default: https://{domain})
//   - AUTH0_DISCOVERY: Resolve the token endpoint from OpenID discovery (default: false)
//   - GATEWAY_JWT_SECRET: HS256 secret callers sign their bearer tokens with (optional)
//   - AUDIT_DB_PATH: SQLite file for the audit log (optional, auditing is off when empty)
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the gateway.
type Config struct {
	Port     string
	LogLevel string

	// Auth0 tenant and machine-to-machine credentials
	Domain        string
	ClientID      string
	ClientSecret  string
	Audience      string
	TokenURL      string
	ManagementURL string
	Discovery     bool

	// Inbound caller authentication, disabled when empty
	CallerJWTSecret string

	// Audit log database, disabled when empty
	AuditDBPath string
}

// Load creates a Config from environment variables. Derived URLs fall back
// to the tenant domain when not set explicitly.
func Load() *Config {
	domain := normalizeDomain(getEnv("AUTH0_DOMAIN", ""))

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Domain:        domain,
		ClientID:      getEnv("AUTH0_CLIENT_ID", ""),
		ClientSecret:  getEnv("AUTH0_CLIENT_SECRET", ""),
		Audience:      getEnv("AUTH0_AUDIENCE", "https://"+domain+"/api/v2/"),
		TokenURL:      getEnv("AUTH0_TOKEN_URL", "https://"+domain+"/oauth/token"),
		ManagementURL: strings.TrimSuffix(getEnv("AUTH0_MANAGEMENT_URL", "https://"+domain), "/"),
		Discovery:     getBoolEnv("AUTH0_DISCOVERY", false),

		CallerJWTSecret: getEnv("GATEWAY_JWT_SECRET", ""),
		AuditDBPath:     getEnv("AUDIT_DB_PATH", ""),
	}
}

// Issuer returns the tenant's OpenID issuer URL.
func (c *Config) Issuer() string {
	return "https://" + c.Domain + "/"
}

// Validate checks that the Auth0 credentials are present.
func (c *Config) Validate() error {
	var errs []error

	if c.Domain == "" {
		errs = append(errs, errors.New("AUTH0_DOMAIN is required"))
	} else if strings.ContainsAny(c.Domain, "/:?#") {
		errs = append(errs, errors.New("AUTH0_DOMAIN must be a bare host name, e.g. example.eu.auth0.com"))
	}
	if c.ClientID == "" {
		errs = append(errs, errors.New("AUTH0_CLIENT_ID is required"))
	}
	if c.ClientSecret == "" {
		errs = append(errs, errors.New("AUTH0_CLIENT_SECRET is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.CallerJWTSecret != "" && len(c.CallerJWTSecret) < 32 {
		errs = append(errs, errors.New("GATEWAY_JWT_SECRET must be at least 32 characters"))
	}

	return errors.Join(errs...)
}

// normalizeDomain strips an http or https scheme and trailing slashes.
func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	for _, scheme := range []string{"https://", "http://"} {
		if len(domain) >= len(scheme) && strings.EqualFold(domain[:len(scheme)], scheme) {
			domain = domain[len(scheme):]
			break
		}
	}
	return strings.TrimRight(domain, "/")
}

// getEnv retrieves an environment variable or returns defaultValue if unset or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv accepts anything strconv.ParseBool understands; other values yield defaultValue.
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
