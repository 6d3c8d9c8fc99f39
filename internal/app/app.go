// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package app is the top-level container: it owns the Uploader, holds the
// latest summary, and composes the view.
package app

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/logsummarai/internal/render"
	"github.com/pdiddy/logsummarai/internal/uploader"
	"github.com/pdiddy/logsummarai/pkg/types"
)

// Title is the application header.
const Title = "LogSummarAI"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	triggerStyle  = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
)

// App holds the current summary. The summary is absent until the first value
// arrives and afterwards always holds the latest value; there is no history
// and no reset.
type App struct {
	uploader *uploader.Uploader

	mu      sync.RWMutex
	summary *string
}

// New creates an App whose Uploader reports into OnSummaryReceived.
func New(cfg types.ClientConfig, opts ...uploader.Option) *App {
	a := &App{}
	a.uploader = uploader.New(cfg, a.OnSummaryReceived, opts...)
	return a
}

// Uploader returns the App's uploader.
func (a *App) Uploader() *uploader.Uploader {
	return a.uploader
}

// OnSummaryReceived replaces the summary with text.
func (a *App) OnSummaryReceived(text string) {
	a.mu.Lock()
	a.summary = &text
	a.mu.Unlock()
}

// Summary returns the latest summary and whether one has been received.
func (a *App) Summary() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.summary == nil {
		return "", false
	}
	return *a.summary, true
}

// ShowsSummary reports whether the summary view is part of the page. It is
// true once any value has been received, including an empty one.
func (a *App) ShowsSummary() bool {
	_, ok := a.Summary()
	return ok
}

// Header renders the title bar.
func Header() string {
	return titleStyle.Render(Title)
}

// UploaderView renders the selected file and the submit control.
func (a *App) UploaderView() string {
	var b strings.Builder

	if f, ok := a.uploader.Selected(); ok {
		fmt.Fprintf(&b, "File: %s (%s)\n", f.Name, f.MediaType)
	} else {
		fmt.Fprintf(&b, "File: none selected (%s)\n", uploader.AcceptHint)
	}

	label, enabled := a.uploader.Trigger()
	button := "[ " + label + " ]"
	if enabled {
		b.WriteString(triggerStyle.Render(button))
	} else {
		b.WriteString(disabledStyle.Render(button))
	}
	b.WriteString("\n")
	return b.String()
}

// View composes the page: header, uploader, and the summary view when a
// summary is present.
func (a *App) View(r *render.Renderer) (string, error) {
	var b strings.Builder
	b.WriteString(Header())
	b.WriteString("\n\n")
	b.WriteString(a.UploaderView())

	if summary, ok := a.Summary(); ok {
		out, err := r.Render(summary)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(out)
	}
	return b.String(), nil
}
