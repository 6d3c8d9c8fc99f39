// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive front end: a file picker, the submit
// control, and the summary pane, driven by bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/logsummarai/internal/app"
	"github.com/pdiddy/logsummarai/internal/render"
	"github.com/pdiddy/logsummarai/internal/uploader"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// submittedMsg is sent once a submission has finished and the uploader is
// Idle again.
type submittedMsg struct{}

// Model is the bubbletea model for the interactive client.
type Model struct {
	ctx      context.Context
	app      *app.App
	renderer *render.Renderer
	picker   filepicker.Model
	spinner  spinner.Model

	// pending is closed when the running submission completes; nil when idle.
	pending <-chan struct{}

	rendered string
	err      error
}

// New builds the model. The picker starts in startDir and suggests .txt
// files; other files can still be picked.
func New(ctx context.Context, a *app.App, r *render.Renderer, startDir string) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{uploader.AcceptHint}
	fp.CurrentDirectory = startDir

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		app:      a,
		renderer: r,
		picker:   fp,
		spinner:  sp,
	}
}

// Init reads the start directory.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles key presses, picker events, and submission completion.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			return m.submit()
		}
	case submittedMsg:
		m.pending = nil
		m.refreshSummary()
		return m, nil
	case spinner.TickMsg:
		if m.pending == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selectFile(path)
	} else if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.selectFile(path)
	}
	return m, cmd
}

func (m *Model) selectFile(path string) {
	m.err = m.app.Uploader().SelectFile(path)
}

// submit starts an upload. It does nothing while one is in flight or when
// no file is selected.
func (m Model) submit() (tea.Model, tea.Cmd) {
	done, ok := m.app.Uploader().SubmitAsync(m.ctx)
	if !ok {
		return m, nil
	}
	m.pending = done
	return m, tea.Batch(m.spinner.Tick, waitFor(done))
}

func waitFor(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return submittedMsg{}
	}
}

func (m *Model) refreshSummary() {
	summary, ok := m.app.Summary()
	if !ok {
		return
	}
	out, err := m.renderer.Render(summary)
	if err != nil {
		m.err = err
		return
	}
	m.rendered = out
}

// View renders the page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(app.Header())
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.app.Uploader().State() == uploader.InFlight {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(m.app.UploaderView())

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.app.ShowsSummary() {
		b.WriteString("\n")
		b.WriteString(m.rendered)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select • s submit • q quit"))
	b.WriteString("\n")
	return b.String()
}
