// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uploader owns file selection and the one-shot submission of a log
// file to the summarization server.
//
// An Uploader moves Idle -> InFlight when a submission starts and back to
// Idle on every exit path. At most one submission runs at a time; Submit and
// SubmitAsync are no-ops while InFlight or when no file is selected.
package uploader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/pdiddy/logsummarai/internal/httputil"
	"github.com/pdiddy/logsummarai/pkg/types"
)

const (
	// UploadPath is appended to the configured base URL.
	UploadPath = "/api/upload"

	// FieldName is the multipart field carrying the file.
	FieldName = "file"

	// ErrorMessage is delivered to the callback for every kind of failure.
	ErrorMessage = "Error processing log file."

	// AcceptHint is the file extension the picker suggests. It is not enforced.
	AcceptHint = ".txt"
)

// ErrMissingSummary is returned when a 2xx response lacks a string summary field.
var ErrMissingSummary = errors.New("response has no summary field")

// State is the upload state of an Uploader.
type State int

const (
	Idle State = iota
	InFlight
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Label returns the trigger label for the state.
func (s State) Label() string {
	if s == InFlight {
		return "Processing..."
	}
	return "Upload and Summarize"
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithHTTPClient replaces the HTTP client. Tests pass httptest clients here.
func WithHTTPClient(c *http.Client) Option {
	return func(u *Uploader) {
		u.client = c
	}
}

// WithLogger sets the logger used for submission diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(u *Uploader) {
		u.logger = l
	}
}

// Uploader holds the selected file and the upload state. It is safe for
// concurrent use: a UI may read State while a submission runs.
type Uploader struct {
	client    *http.Client
	logger    *slog.Logger
	endpoint  string
	userAgent string
	onSummary func(string)

	mu    sync.Mutex
	file  *types.SelectedFile
	state State
}

// New creates an Uploader that posts to cfg.BaseURL + UploadPath and reports
// every completed submission to onSummary.
func New(cfg types.ClientConfig, onSummary func(string), opts ...Option) *Uploader {
	u := &Uploader{
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    slog.Default(),
		endpoint:  strings.TrimRight(cfg.BaseURL, "/") + UploadPath,
		userAgent: cfg.UserAgent,
		onSummary: onSummary,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.onSummary == nil {
		u.onSummary = func(string) {}
	}
	return u
}

// Endpoint returns the URL submissions are posted to.
func (u *Uploader) Endpoint() string {
	return u.endpoint
}

// SelectFile records path as the selected file, replacing any earlier
// selection. The path must name a readable regular file; on error the earlier
// selection is kept. No extension or size check is made.
func (u *Uploader) SelectFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("selecting %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("selecting %s: is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("detecting media type of %s: %w", path, err)
	}

	f := &types.SelectedFile{
		Name:      filepath.Base(path),
		Path:      path,
		MediaType: mt.String(),
		Size:      info.Size(),
	}

	u.mu.Lock()
	u.file = f
	u.mu.Unlock()
	return nil
}

// Selected returns the selected file, if any.
func (u *Uploader) Selected() (types.SelectedFile, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.file == nil {
		return types.SelectedFile{}, false
	}
	return *u.file, true
}

// State returns the current upload state.
func (u *Uploader) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// CanSubmit reports whether Submit would start an upload: a file is
// selected and no submission is in flight.
func (u *Uploader) CanSubmit() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.file != nil && u.state == Idle
}

// Trigger returns the submit control's label and whether it is enabled.
// The control is disabled only while a submission is in flight; with no file
// selected it stays enabled and activating it does nothing.
func (u *Uploader) Trigger() (label string, enabled bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Label(), u.state == Idle
}

// Submit uploads the selected file and blocks until the callback has run and
// the state is Idle again. It reports whether a submission took place.
func (u *Uploader) Submit(ctx context.Context) bool {
	done, ok := u.SubmitAsync(ctx)
	if !ok {
		return false
	}
	<-done
	return true
}

// SubmitAsync moves the Uploader to InFlight before returning and runs the
// upload on a new goroutine. The callback fires exactly once, the state goes
// back to Idle, and only then is the returned channel closed. With no file
// selected, or while a submission is in flight, it does nothing and returns
// false.
func (u *Uploader) SubmitAsync(ctx context.Context) (<-chan struct{}, bool) {
	file, ok := u.acquire()
	if !ok {
		return nil, false
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer u.release()
		u.onSummary(u.summarize(ctx, file))
	}()
	return done, true
}

func (u *Uploader) acquire() (types.SelectedFile, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.file == nil || u.state != Idle {
		return types.SelectedFile{}, false
	}
	u.state = InFlight
	return *u.file, true
}

func (u *Uploader) release() {
	u.mu.Lock()
	u.state = Idle
	u.mu.Unlock()
}

// summarize returns the server's summary, or ErrorMessage for any failure.
func (u *Uploader) summarize(ctx context.Context, file types.SelectedFile) string {
	requestID := uuid.NewString()
	log := u.logger.With("request_id", requestID, "file", file.Name)
	log.Debug("submitting log file", "endpoint", u.endpoint, "size", file.Size, "media_type", file.MediaType)

	summary, err := u.upload(ctx, file, requestID)
	if err != nil {
		log.Error("error uploading file", "error", err)
		return ErrorMessage
	}
	log.Debug("summary received", "length", len(summary))
	return summary
}

type uploadResponse struct {
	Summary *string `json:"summary"`
}

func (u *Uploader) upload(ctx context.Context, file types.SelectedFile, requestID string) (string, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	req, err := httputil.NewMultipartRequest(ctx, u.endpoint, httputil.FilePart{
		Field:       FieldName,
		Filename:    file.Name,
		ContentType: file.MediaType,
		Content:     f,
	})
	if err != nil {
		return "", err
	}
	if u.userAgent != "" {
		req.Header.Set("User-Agent", u.userAgent)
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var out uploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if out.Summary == nil {
		return "", ErrMissingSummary
	}
	return *out.Summary, nil
}
