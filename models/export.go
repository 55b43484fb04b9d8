package models

// ExportContentType is the media type of every configuration export
// artifact produced by the client.
const ExportContentType = "application/json"

// ConfigurationExport is the downloadable configuration artifact:
// the server payload re-serialized as human-readable JSON, ready to be
// written to disk or offered as a file download.
type ConfigurationExport struct {
	// Data is the two-space-indented JSON document.
	Data []byte

	// ContentType is the media type of Data, always ExportContentType.
	ContentType string
}
