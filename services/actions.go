package services

import (
	"sort"

	"github.com/blogem/auth0-gateway/models"
)

func entry(method models.Method, path string) models.ActionEntry {
	return models.ActionEntry{Method: method, Path: models.MustParsePathTemplate(path)}
}

// actionTable maps action names to Management API endpoints
var actionTable = map[string]models.ActionEntry{
	// Users
	"list_users":    entry(models.MethodGet, "/api/v2/users"),
	"get_user":      entry(models.MethodGet, "/api/v2/users/{user_id}"),
	"create_user":   entry(models.MethodPost, "/api/v2/users"),
	"update_user":   entry(models.MethodPatch, "/api/v2/users/{user_id}"),
	"delete_user":   entry(models.MethodDelete, "/api/v2/users/{user_id}"),
	"get_user_logs": entry(models.MethodGet, "/api/v2/users/{user_id}/logs"),

	// Connections
	"list_connections":  entry(models.MethodGet, "/api/v2/connections"),
	"get_connection":    entry(models.MethodGet, "/api/v2/connections/{connection_id}"),
	"create_connection": entry(models.MethodPost, "/api/v2/connections"),
	"update_connection": entry(models.MethodPatch, "/api/v2/connections/{connection_id}"),
	"delete_connection": entry(models.MethodDelete, "/api/v2/connections/{connection_id}"),

	// Applications
	"list_clients":  entry(models.MethodGet, "/api/v2/clients"),
	"get_client":    entry(models.MethodGet, "/api/v2/clients/{client_id}"),
	"create_client": entry(models.MethodPost, "/api/v2/clients"),
	"update_client": entry(models.MethodPatch, "/api/v2/clients/{client_id}"),
	"delete_client": entry(models.MethodDelete, "/api/v2/clients/{client_id}"),

	// Roles
	"list_roles":  entry(models.MethodGet, "/api/v2/roles"),
	"get_role":    entry(models.MethodGet, "/api/v2/roles/{role_id}"),
	"create_role": entry(models.MethodPost, "/api/v2/roles"),
	"update_role": entry(models.MethodPatch, "/api/v2/roles/{role_id}"),
	"delete_role": entry(models.MethodDelete, "/api/v2/roles/{role_id}"),

	// Organizations
	"list_organizations":  entry(models.MethodGet, "/api/v2/organizations"),
	"get_organization":    entry(models.MethodGet, "/api/v2/organizations/{organization_id}"),
	"create_organization": entry(models.MethodPost, "/api/v2/organizations"),
	"update_organization": entry(models.MethodPatch, "/api/v2/organizations/{organization_id}"),
	"delete_organization": entry(models.MethodDelete, "/api/v2/organizations/{organization_id}"),

	// Log streams
	"list_log_streams":  entry(models.MethodGet, "/api/v2/log-streams"),
	"get_log_stream":    entry(models.MethodGet, "/api/v2/log-streams/{log_stream_id}"),
	"create_log_stream": entry(models.MethodPost, "/api/v2/log-streams"),
	"update_log_stream": entry(models.MethodPatch, "/api/v2/log-streams/{log_stream_id}"),
	"delete_log_stream": entry(models.MethodDelete, "/api/v2/log-streams/{log_stream_id}"),

	// Names accepted by the first release of the gateway
	"getUsers":    entry(models.MethodGet, "/api/v2/users"),
	"getUserById": entry(models.MethodGet, "/api/v2/users/{user_id}"),
}

// lookupAction returns the table entry for name
func lookupAction(name string) (models.ActionEntry, bool) {
	e, ok := actionTable[name]
	return e, ok
}

// ListActions describes every supported action, sorted by name
func ListActions() []models.ActionInfo {
	infos := make([]models.ActionInfo, 0, len(actionTable))
	for name, e := range actionTable {
		infos = append(infos, models.ActionInfo{
			Name:       name,
			Method:     e.Method,
			Path:       e.Path.String(),
			Parameters: e.Path.Placeholders(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}
