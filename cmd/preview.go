package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/scrapdiary/scrapdiary/internal/preview"
	"github.com/scrapdiary/scrapdiary/internal/progress"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Assemble the diary and review it in the browser before saving",
	Long: `Runs the same pipeline as export and serves the resulting document
locally. The preview shows the exact bytes a save would write; saving
from a reviewed preview never re-renders. The review panel at /review
lets you rephrase the daily prompts for reading; those edits stay in
the session and are never written back to the diary.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("port", 0, "port for the preview server (defaults to config)")
	previewCmd.Flags().Bool("open", false, "open the browser automatically")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Preview.Port
	}

	ctx := cmd.Context()
	model, _, db, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	assembler := newAssembler(cfg, progress.NewReporter())
	artifact, err := assembler.Export(ctx, model)
	if err != nil {
		return fmt.Errorf("assembling export: %w", err)
	}

	srv := preview.New(preview.Config{Port: port, AllowAll: cfg.Preview.AllowAll})
	srv.SetArtifact(artifact)

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Printf("Previewing %d days at %s (review panel at %s/review)\n", len(artifact.Days), url, url)
	fmt.Println("Press Ctrl+C to stop.")

	open, _ := cmd.Flags().GetBool("open")
	if open || cfg.Preview.OpenBrowser {
		go openBrowser(url + "/review")
	}

	return srv.Start()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
