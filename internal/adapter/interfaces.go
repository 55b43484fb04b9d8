// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

// Package adapter provides the transport layer for the burnout analysis
// configuration API.
//
// The primary abstraction is [ConfigurationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPConfigurationAdapter]) built on resty.
//
// Every non-success response is normalized into an [*APIError] by
// mapAPIError, so callers get one uniform failure shape regardless of which
// operation failed: the server's "detail" message when the body carries one,
// the HTTP status text otherwise.
package adapter

import (
	"context"

	"github.com/oncallsight/burnoutctl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/configuration_adapter_mock.go -package=mock

// ConfigurationAdapter defines transport-agnostic access to the analysis
// configuration API. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level failures to
// [*APIError].
type ConfigurationAdapter interface {
	// Get fetches the current configuration.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Get(ctx context.Context) (models.Configuration, error)

	// Update replaces the client-writable settings with update and returns
	// the configuration as persisted by the server, including refreshed
	// metadata. The payload type carries no server-assigned fields, so an
	// update can never transmit them.
	Update(ctx context.Context, update models.ConfigurationUpdate) (models.Configuration, error)

	// Reset asks the server to restore its default configuration and
	// returns the resulting state.
	Reset(ctx context.Context) (models.Configuration, error)

	// Export fetches the configuration and packages it as a downloadable
	// artifact: the server payload re-serialized with two-space
	// indentation and tagged application/json.
	Export(ctx context.Context) (models.ConfigurationExport, error)

	// Import uploads previously exported configuration contents. The
	// contents are parsed locally first: malformed JSON fails with the
	// parser's error before any network traffic occurs.
	Import(ctx context.Context, contents []byte) (models.Configuration, error)
}
