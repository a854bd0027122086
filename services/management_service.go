package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/authenticator"
	"github.com/blogem/auth0-gateway/models"
)

// maxResponseBytes caps how much of a Management API response is buffered
const maxResponseBytes = 10 << 20

// ManagementService interface defines action dispatch against the Management API
type ManagementService interface {
	Handle(ctx context.Context, action string, parameters json.RawMessage) *Result
	Actions() []models.ActionInfo
}

// Result is the outcome of a dispatched action, ready to be written to the caller
type Result struct {
	StatusCode int
	Body       interface{}

	// Method and Path are what was sent downstream; empty if dispatch stopped earlier
	Method   string
	Path     string
	Duration time.Duration

	// Err is the failure behind an error envelope, nil on success
	Err error
}

// managementService implements ManagementService interface
type managementService struct {
	baseURL    string
	tokens     authenticator.TokenProvider
	httpClient *http.Client
	logger     *zap.Logger
}

// NewManagementService creates a new dispatcher calling the Management API at baseURL
func NewManagementService(baseURL string, tokens authenticator.TokenProvider, httpClient *http.Client, logger *zap.Logger) ManagementService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &managementService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Actions lists the supported actions
func (s *managementService) Actions() []models.ActionInfo {
	return ListActions()
}

// Handle runs one action and translates the outcome into a status and body
func (s *managementService) Handle(ctx context.Context, action string, parameters json.RawMessage) *Result {
	start := time.Now()
	result := &Result{}

	body, err := s.dispatch(ctx, action, parameters, result)
	result.Duration = time.Since(start)

	logger := s.logger.With(
		zap.String("action", action),
		zap.String("method", result.Method),
		zap.String("path", result.Path),
		zap.Duration("duration", result.Duration),
	)

	if err != nil {
		result.Err = err
		result.StatusCode = StatusFor(err)
		result.Body = models.ErrorResponse{Error: ErrorMessage(err)}

		if result.StatusCode >= http.StatusInternalServerError {
			logger.Error("action failed", zap.Int("status", result.StatusCode), zap.Error(err))
		} else {
			logger.Warn("action rejected", zap.Int("status", result.StatusCode), zap.Error(err))
		}
		return result
	}

	result.StatusCode = http.StatusOK
	result.Body = body
	logger.Info("action completed")
	return result
}

// dispatch performs the request pipeline, recording method and path on result as they are resolved
func (s *managementService) dispatch(ctx context.Context, action string, raw json.RawMessage, result *Result) (interface{}, error) {
	entry, ok := lookupAction(action)
	if !ok {
		return nil, inputErrorf("unsupported action: %s", action)
	}

	params, err := decodeParameters(raw)
	if err != nil {
		return nil, err
	}

	path, err := entry.Path.Expand(func(name string) (string, error) {
		value, ok := params[name]
		if !ok {
			return "", inputErrorf("missing parameter: %s", name)
		}
		str, err := scalarString(value)
		if err != nil || !validSegment(str) {
			return "", inputErrorf("invalid parameter format: %s", name)
		}
		return str, nil
	})
	if err != nil {
		return nil, err
	}

	query, err := decodeQuery(params["query"])
	if err != nil {
		return nil, err
	}

	var payload []byte
	if entry.Method.HasBody() {
		payload = decodeBody(params["body"])
	}

	result.Method = string(entry.Method)
	result.Path = path

	token, err := s.tokens.AcquireToken(ctx)
	if err != nil {
		return nil, err
	}

	return s.call(ctx, entry.Method, path, query, payload, token)
}

// call issues the downstream request and interprets the response
func (s *managementService) call(ctx context.Context, method models.Method, path string, query url.Values, payload []byte, token string) (interface{}, error) {
	target := s.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build management request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read management API response: %w", err)
	}
	if len(respBody) > maxResponseBytes {
		return nil, fmt.Errorf("management API response exceeds %d bytes", maxResponseBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return models.MessageResponse{Message: models.NoContentMessage}, nil
	}

	if !json.Valid(respBody) {
		return nil, errors.New("management API returned a response that is not valid JSON")
	}

	return json.RawMessage(respBody), nil
}

// decodeParameters accepts an object, a JSON string holding an object, or nothing
func decodeParameters(raw json.RawMessage) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]json.RawMessage{}, nil
	}

	if trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, inputErrorf("invalid parameters")
		}
		trimmed = bytes.TrimSpace([]byte(encoded))
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, inputErrorf("invalid parameters")
	}

	var params map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &params); err != nil {
		return nil, inputErrorf("invalid parameters")
	}

	return params, nil
}

// decodeQuery converts parameters.query into URL values
func decodeQuery(raw json.RawMessage) (url.Values, error) {
	query := url.Values{}
	if isAbsent(raw) {
		return query, nil
	}

	var fields map[string]json.RawMessage
	if bytes.TrimSpace(raw)[0] != '{' || json.Unmarshal(raw, &fields) != nil {
		return nil, inputErrorf("invalid parameter format: query")
	}

	for key, value := range fields {
		if bytes.TrimSpace(value)[0] == '[' {
			var items []json.RawMessage
			if err := json.Unmarshal(value, &items); err != nil {
				return nil, inputErrorf("invalid parameter format: query")
			}
			for _, item := range items {
				s, err := scalarString(item)
				if err != nil {
					return nil, inputErrorf("invalid parameter format: query")
				}
				query.Add(key, s)
			}
			continue
		}

		s, err := scalarString(value)
		if err != nil {
			return nil, inputErrorf("invalid parameter format: query")
		}
		query.Add(key, s)
	}

	return query, nil
}

// decodeBody returns parameters.body unchanged, or an empty object when absent
func decodeBody(raw json.RawMessage) []byte {
	if isAbsent(raw) {
		return []byte("{}")
	}
	return raw
}

// scalarString renders a JSON string, number or boolean as text.
// Numbers keep their original formatting.
func scalarString(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

// validSegment rejects values that would address a different resource once
// substituted into a path: empty strings and dot segments.
func validSegment(value string) bool {
	return value != "" && value != "." && value != ".."
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
