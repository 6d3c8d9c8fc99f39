// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for talking to the summarization server.
package httputil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

const defaultPartType = "application/octet-stream"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// FilePart describes the single file part of a multipart upload.
type FilePart struct {
	// Field is the form field name (e.g. "file").
	Field string

	// Filename is sent in the part's Content-Disposition header.
	Filename string

	// ContentType is the part's media type. Empty means application/octet-stream.
	ContentType string

	// Content is copied into the part body.
	Content io.Reader
}

// NewMultipartRequest builds a POST request whose multipart/form-data body
// holds exactly one file part. The body is buffered in memory so the request
// carries a Content-Length.
func NewMultipartRequest(ctx context.Context, url string, part FilePart) (*http.Request, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	contentType := part.ContentType
	if contentType == "" {
		contentType = defaultPartType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(part.Field), quoteEscaper.Replace(part.Filename)))
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(w, part.Content); err != nil {
		return nil, fmt.Errorf("writing form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}
