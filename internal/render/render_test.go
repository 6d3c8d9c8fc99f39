// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/logsummarai/pkg/types"
)

const errorText = "Error processing log file."

func mustNew(t *testing.T, cfg types.RenderConfig) *Renderer {
	t.Helper()
	r, err := New(cfg)
	require.NoError(t, err)
	return r
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.RenderConfig
		wantErr string
	}{
		{"default format", types.RenderConfig{}, ""},
		{"terminal notty", types.RenderConfig{Format: types.FormatTerminal, Style: "notty", Width: 60}, ""},
		{"terminal dark", types.RenderConfig{Format: types.FormatTerminal, Style: "dark"}, ""},
		{"markdown", types.RenderConfig{Format: types.FormatMarkdown}, ""},
		{"html", types.RenderConfig{Format: types.FormatHTML}, ""},
		{"json", types.RenderConfig{Format: types.FormatJSON}, ""},
		{"yaml", types.RenderConfig{Format: types.FormatYAML}, ""},
		{"unknown format", types.RenderConfig{Format: "pdf"}, `unsupported format "pdf"`},
		{"unknown style", types.RenderConfig{Format: types.FormatTerminal, Style: "neon"}, `unsupported style "neon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestInteractive(t *testing.T) {
	assert.True(t, mustNew(t, types.RenderConfig{}).Interactive())
	assert.Equal(t, types.FormatTerminal, mustNew(t, types.RenderConfig{}).Format())
	assert.False(t, mustNew(t, types.RenderConfig{Format: types.FormatJSON}).Interactive())
}

func TestRender_Terminal(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatTerminal, Style: "notty", Width: 80})

	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{"emphasis", "**bold** text", []string{Heading, "bold", "text"}},
		{"error message", errorText, []string{Heading, errorText}},
		{"list", "- **ERROR:** 3\n- **INFO:** 10", []string{"ERROR:", "INFO:", "10"}},
		{"malformed markdown", "**unclosed _emphasis", []string{"unclosed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.summary)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRender_HTML(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatHTML})

	out, err := r.Render("**bold** text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="summary-display">`))
	assert.Contains(t, out, "<h2>Summary</h2>")
	assert.Contains(t, out, "<strong>bold</strong> text")

	out, err = r.Render(errorText)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>"+errorText+"</p>")
}

func TestRender_HTMLOmitsRawHTML(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatHTML})

	out, err := r.Render("<script>alert(1)</script>\n\nplain")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "raw HTML omitted")
	assert.Contains(t, out, "<p>plain</p>")
}

func TestRender_Markdown(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatMarkdown})

	out, err := r.Render("**bold** text")
	require.NoError(t, err)
	assert.Equal(t, "## Summary\n\n**bold** text\n", out)
}

func TestRender_JSON(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatJSON})

	out, err := r.Render("**bold** text")
	require.NoError(t, err)

	var rec types.SummaryRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "**bold** text", rec.Summary)
}

func TestRender_YAML(t *testing.T) {
	r := mustNew(t, types.RenderConfig{Format: types.FormatYAML})

	out, err := r.Render("## Basic Summary\n\n- **ERROR:** 2")
	require.NoError(t, err)

	var rec types.SummaryRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "## Basic Summary\n\n- **ERROR:** 2", rec.Summary)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "No errors found.", "No errors found."},
		{"keeps newline and tab", "a\n\tb", "a\n\tb"},
		{"drops escape sequence intro", "\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"drops bell and carriage return", "x\ay\r\n", "xy\n"},
		{"keeps unicode", "résumé ✓", "résumé ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}
