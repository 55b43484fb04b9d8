package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/oncallsight/burnoutctl/internal/config"
	"github.com/oncallsight/burnoutctl/internal/credentials"
	"github.com/oncallsight/burnoutctl/internal/logger"
	"github.com/oncallsight/burnoutctl/internal/utils"
	"github.com/oncallsight/burnoutctl/models"
	"github.com/rs/zerolog"
)

// API endpoint paths, relative to the configured base URL.
const (
	configurationPath       = "/api/configuration"
	configurationResetPath  = "/api/configuration/reset"
	configurationExportPath = "/api/configuration/export"
	configurationImportPath = "/api/configuration/import"
)

type httpConfigurationAdapter struct {
	client *utils.HTTPClient
	creds  credentials.Source

	logger *logger.Logger
}

// NewHTTPConfigurationAdapter constructs an HTTP/REST implementation of
// [ConfigurationAdapter]. It normalises and validates the base URL from
// apiCfg.URL, configures the underlying resty client with the resolved base
// URL and request timeout, and installs a cookie jar so session cookies set
// by the server are carried on every subsequent request.
//
// The bearer token is resolved from creds per request: a non-empty token is
// sent as "Authorization: Bearer <token>", an empty one omits the header
// entirely.
//
// Returns an error if apiCfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPConfigurationAdapter(apiCfg config.API, creds credentials.Source, logger *logger.Logger) (ConfigurationAdapter, error) {
	baseURL, err := normalizeBaseURL(apiCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}

	client, err := utils.NewHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}
	client.SetBaseURL(baseURL).SetTimeout(apiCfg.RequestTimeout)

	return &httpConfigurationAdapter{client: client, creds: creds, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [ConfigurationAdapter]. It GETs /api/configuration and
// decodes the response payload.
func (h *httpConfigurationAdapter) Get(ctx context.Context) (models.Configuration, error) {
	resp, err := h.authedRequest(ctx).Get(configurationPath)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("get configuration request: %w", err)
	}
	h.logResponse("get", resp)
	if err = mapAPIError(resp); err != nil {
		return models.Configuration{}, err
	}

	return decodeConfiguration(resp.Body())
}

// Update implements [ConfigurationAdapter]. It PUTs the client-writable
// settings to /api/configuration and decodes the persisted configuration
// from the response.
func (h *httpConfigurationAdapter) Update(ctx context.Context, update models.ConfigurationUpdate) (models.Configuration, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(update).
		Put(configurationPath)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("update configuration request: %w", err)
	}
	h.logResponse("update", resp)
	if err = mapAPIError(resp); err != nil {
		return models.Configuration{}, err
	}

	return decodeConfiguration(resp.Body())
}

// Reset implements [ConfigurationAdapter]. It POSTs to
// /api/configuration/reset and decodes the restored defaults from the
// response.
func (h *httpConfigurationAdapter) Reset(ctx context.Context) (models.Configuration, error) {
	resp, err := h.authedRequest(ctx).Post(configurationResetPath)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("reset configuration request: %w", err)
	}
	h.logResponse("reset", resp)
	if err = mapAPIError(resp); err != nil {
		return models.Configuration{}, err
	}

	return decodeConfiguration(resp.Body())
}

// Export implements [ConfigurationAdapter]. It GETs
// /api/configuration/export and re-serializes the payload with two-space
// indentation, preserving the server's key order.
func (h *httpConfigurationAdapter) Export(ctx context.Context) (models.ConfigurationExport, error) {
	resp, err := h.authedRequest(ctx).Get(configurationExportPath)
	if err != nil {
		return models.ConfigurationExport{}, fmt.Errorf("export configuration request: %w", err)
	}
	h.logResponse("export", resp)
	if err = mapAPIError(resp); err != nil {
		return models.ConfigurationExport{}, err
	}

	var pretty bytes.Buffer
	if err = json.Indent(&pretty, resp.Body(), "", "  "); err != nil {
		return models.ConfigurationExport{}, fmt.Errorf("format export payload: %w", err)
	}

	return models.ConfigurationExport{
		Data:        pretty.Bytes(),
		ContentType: models.ExportContentType,
	}, nil
}

// Import implements [ConfigurationAdapter]. The contents are validated and
// compacted by the JSON parser before the request is issued: malformed
// input returns the parser's error and never reaches the wire. Valid
// contents are POSTed to /api/configuration/import.
func (h *httpConfigurationAdapter) Import(ctx context.Context, contents []byte) (models.Configuration, error) {
	var payload bytes.Buffer
	if err := json.Compact(&payload, contents); err != nil {
		return models.Configuration{}, fmt.Errorf("parse import payload: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetBody(payload.Bytes()).
		Post(configurationImportPath)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("import configuration request: %w", err)
	}
	h.logResponse("import", resp)
	if err = mapAPIError(resp); err != nil {
		return models.Configuration{}, err
	}

	return decodeConfiguration(resp.Body())
}

// authedRequest prepares a request with the shared headers of every
// operation: JSON content type, a fresh request id, and the bearer token
// when one is available. A child logger tagged with the request id travels
// in the request context and is recovered by logResponse.
func (h *httpConfigurationAdapter) authedRequest(ctx context.Context) *resty.Request {
	requestID := utils.RequestID()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	req := h.client.R().
		SetContext(l.WithContext(ctx)).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID)
	if token := h.creds.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpConfigurationAdapter) logResponse(op string, resp *resty.Response) {
	logger.FromContext(resp.Request.Context()).Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("configuration api call")
}

func decodeConfiguration(body []byte) (models.Configuration, error) {
	var cfg models.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("decode configuration response: %w", err)
	}
	return cfg, nil
}
