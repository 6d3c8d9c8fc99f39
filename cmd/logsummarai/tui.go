// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/logsummarai/internal/app"
	"github.com/pdiddy/logsummarai/internal/logging"
	"github.com/pdiddy/logsummarai/internal/render"
	"github.com/pdiddy/logsummarai/internal/tui"
	"github.com/pdiddy/logsummarai/pkg/types"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [dir]",
	Short: "Pick a log file and summarize it interactively",
	Long: `Tui opens a file browser rooted at dir (default: the current directory).
Choose a file with enter and press s to upload it; the summary appears below
the picker. The submit control is disabled while an upload is running.

The terminal is taken over by the interface, so diagnostics go to --log-file
(default: discarded).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, _ := cmd.Flags().GetString("log-file")
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.Init(logOut, logging.ParseLevel(cfg.Log.Level), false)

	// The summary pane is always terminal markdown, whatever --format says.
	renderCfg := cfg.Render
	renderCfg.Format = types.FormatTerminal
	r, err := render.New(renderCfg)
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	} else if !info.IsDir() {
		return fmt.Errorf("opening %s: not a directory", dir)
	}

	a := app.New(cfg.Server)
	logger.Debug("starting interactive mode", slog.String("dir", dir), slog.String("endpoint", a.Uploader().Endpoint()))

	p := tea.NewProgram(tui.New(cmd.Context(), a, r, dir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

func init() {
	tuiCmd.Flags().String("log-file", "", "append diagnostics to this file")

	rootCmd.AddCommand(tuiCmd)
}
