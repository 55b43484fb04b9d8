// Package service orchestrates configuration operations on top of the
// transport adapter: preset application, file-based export and import,
// and plain pass-through of the remote operations.
package service

import (
	"context"

	"github.com/oncallsight/burnoutctl/models"
)

// ConfigurationService is the application-facing surface of the client.
// It adds local concerns (preset catalog, files on disk) on top of
// [adapter.ConfigurationAdapter] without changing its semantics.
type ConfigurationService interface {
	// Fetch returns the current remote configuration.
	Fetch(ctx context.Context) (models.Configuration, error)

	// Apply replaces the client-writable settings and returns the
	// persisted result.
	Apply(ctx context.Context, update models.ConfigurationUpdate) (models.Configuration, error)

	// ApplyPreset looks up a built-in preset by name and applies it.
	// Returns [ErrUnknownPreset] (wrapped, with the valid names) when the
	// name is not in the catalog; the server is not contacted in that
	// case.
	ApplyPreset(ctx context.Context, name string) (models.Configuration, error)

	// Reset restores the server-side defaults and returns them.
	Reset(ctx context.Context) (models.Configuration, error)

	// ExportToFile fetches the export artifact and writes it to path.
	// An empty path selects [DefaultExportFileName] in the working
	// directory. Returns the path actually written.
	ExportToFile(ctx context.Context, path string) (string, error)

	// ImportFromFile reads the file at path and uploads its contents.
	// A file that is not valid JSON fails locally before any network
	// traffic occurs.
	ImportFromFile(ctx context.Context, path string) (models.Configuration, error)
}
