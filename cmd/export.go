package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/scrapdiary/scrapdiary/internal/export"
	"github.com/scrapdiary/scrapdiary/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Assemble the diary into a single offline HTML file",
	Long: `Loads the diary, inlines every image it references, renders the calendar
pages and writes one self-contained HTML document. A declined or failed
save leaves nothing half-written; the assembled document stays valid and
can be saved again.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "override the output path")
	exportCmd.Flags().Bool("stdout", false, "write the document to stdout instead of a file")
	exportCmd.Flags().BoolP("yes", "y", false, "save without asking for confirmation")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	skipConfirm, _ := cmd.Flags().GetBool("yes")
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		outPath = cfg.OutputPath
	}

	ctx := cmd.Context()
	model, st, db, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// Keep stdout clean for the document itself.
	reporter := progress.NewReporter()
	if toStdout {
		reporter = progress.Quiet()
	}

	assembler := newAssembler(cfg, reporter)
	artifact, err := assembler.Export(ctx, model)
	if err != nil {
		return fmt.Errorf("assembling export: %w", err)
	}

	var sink export.Sink
	if toStdout {
		sink = &export.WriterSink{W: os.Stdout}
	} else {
		sink = &export.FileSink{Path: outPath}
		if !skipConfirm {
			sink = &export.ConfirmedSink{
				Confirm: confirmSave(outPath),
				Next:    sink,
			}
		}
	}

	status, err := sink.Write(artifact)
	switch status {
	case export.StatusSaved:
		if !toStdout {
			fmt.Printf("Exported %d days to %s (%d bytes)\n", len(artifact.Days), outPath, len(artifact.HTML))
			if st != nil {
				if recErr := st.RecordExport(ctx, artifact, outPath); recErr != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not record export history: %v\n", recErr)
				}
			}
		}
		return nil
	case export.StatusCanceled:
		fmt.Println("Export canceled; nothing was written.")
		return nil
	default:
		return fmt.Errorf("saving export: %w", err)
	}
}

// confirmSave asks before overwriting the output path.
func confirmSave(path string) func(a *export.Artifact) (bool, error) {
	return func(a *export.Artifact) (bool, error) {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Save %d days to %s", len(a.Days), path),
			IsConfirm: true,
		}
		_, err := prompt.Run()
		if err == promptui.ErrAbort {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}
