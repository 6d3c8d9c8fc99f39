// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/logsummarai/internal/app"
	"github.com/pdiddy/logsummarai/internal/render"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Upload a log file and print its summary",
	Long: `Summarize uploads one log file to the server's /api/upload endpoint and
prints the returned summary. Plain-text (.txt) logs are expected but not
enforced.

Any failure (unreachable server, error status, unreadable response) is
reported as "Error processing log file." in place of the summary; details go
to the log. With no file argument nothing is uploaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r, err := render.New(cfg.Render)
	if err != nil {
		return err
	}

	a := app.New(cfg.Server)
	if len(args) == 1 {
		if err := a.Uploader().SelectFile(args[0]); err != nil {
			return err
		}
	}

	a.Uploader().Submit(cmd.Context())

	out, err := summarizeOutput(a, r)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
	return nil
}

// summarizeOutput returns the full page for terminal output and only the
// rendered summary for document formats.
func summarizeOutput(a *app.App, r *render.Renderer) (string, error) {
	if r.Interactive() {
		return a.View(r)
	}
	summary, ok := a.Summary()
	if !ok {
		return "", nil
	}
	return r.Render(summary)
}

func init() {
	summarizeCmd.Flags().String("out", "", "write the rendered output to this file instead of stdout")

	rootCmd.AddCommand(summarizeCmd)
}
