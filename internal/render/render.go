// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns summary text into displayable output.
//
// Rendering is a pure mapping from the summary string to output. The text is
// treated as markdown and is never special-cased: the fixed upload error
// message renders the same way as a real summary. Malformed markdown renders
// best-effort.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/logsummarai/pkg/types"
)

// Heading titles the summary view.
const Heading = "Summary"

// validStyles lists the glamour standard styles accepted for terminal output.
var validStyles = map[string]bool{
	"auto":        true,
	"dark":        true,
	"light":       true,
	"notty":       true,
	"ascii":       true,
	"pink":        true,
	"dracula":     true,
	"tokyo-night": true,
}

// Renderer renders summaries in one configured format.
type Renderer struct {
	format types.RenderFormat
	term   *glamour.TermRenderer
	md     goldmark.Markdown
}

// New validates cfg and builds a Renderer. An empty format means terminal
// and an empty style means auto.
func New(cfg types.RenderConfig) (*Renderer, error) {
	format := cfg.Format
	if format == "" {
		format = types.FormatTerminal
	}

	r := &Renderer{format: format}

	switch format {
	case types.FormatTerminal:
		term, err := newTermRenderer(cfg.Style, cfg.Width)
		if err != nil {
			return nil, err
		}
		r.term = term
	case types.FormatHTML:
		r.md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	case types.FormatMarkdown, types.FormatJSON, types.FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported format %q: use terminal, markdown, html, json, or yaml", cfg.Format)
	}
	return r, nil
}

func newTermRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if style == "" {
		style = "auto"
	}
	if !validStyles[style] {
		return nil, fmt.Errorf("unsupported style %q", style)
	}

	opts := []glamour.TermRendererOption{}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating terminal renderer: %w", err)
	}
	return term, nil
}

// Format returns the output format.
func (r *Renderer) Format() types.RenderFormat {
	return r.format
}

// Interactive reports whether the output is meant for a human at a terminal,
// as opposed to a document another program reads.
func (r *Renderer) Interactive() bool {
	return r.format == types.FormatTerminal
}

// Render produces the summary view for summary in the configured format.
func (r *Renderer) Render(summary string) (string, error) {
	switch r.format {
	case types.FormatTerminal:
		out, err := r.term.Render(Markdown(Sanitize(summary)))
		if err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		return out, nil
	case types.FormatMarkdown:
		return Markdown(summary), nil
	case types.FormatHTML:
		return r.renderHTML(summary)
	case types.FormatJSON:
		data, err := json.MarshalIndent(types.SummaryRecord{Summary: summary}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling summary: %w", err)
		}
		return string(data) + "\n", nil
	case types.FormatYAML:
		data, err := yaml.Marshal(types.SummaryRecord{Summary: summary})
		if err != nil {
			return "", fmt.Errorf("marshaling summary: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unsupported format %q", r.format)
}

// Markdown prefixes summary with the view heading.
func Markdown(summary string) string {
	return "## " + Heading + "\n\n" + summary + "\n"
}

// renderHTML converts the body with goldmark. Raw HTML in the summary is
// replaced by a comment because the renderer is not built WithUnsafe.
func (r *Renderer) renderHTML(summary string) (string, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(summary), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<div class="summary-display">` + "\n")
	b.WriteString("<h2>" + html.EscapeString(Heading) + "</h2>\n")
	b.Write(body.Bytes())
	b.WriteString("</div>\n")
	return b.String(), nil
}

// Sanitize drops control characters other than newline and tab, so text from
// the server cannot emit terminal escape sequences.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
