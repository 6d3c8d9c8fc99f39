package types

// SelectedFile references a local file chosen for upload. The content is read
// when the file is submitted, not when it is selected.
type SelectedFile struct {
	// Name is the base name sent as the multipart filename (e.g. "app.log").
	Name string `json:"name" yaml:"name"`

	// Path is the local filesystem path.
	Path string `json:"path" yaml:"path"`

	// MediaType is the detected MIME type (e.g. "text/plain; charset=utf-8").
	MediaType string `json:"media_type" yaml:"media_type"`

	// Size is the file size in bytes at selection time.
	Size int64 `json:"size" yaml:"size"`
}

// SummaryRecord is the machine-readable form of a summary. It carries the
// same text the terminal view shows; server failures appear as the fixed
// error message, not as a separate field.
type SummaryRecord struct {
	Summary string `json:"summary" yaml:"summary"`
}
