package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrapdiary/scrapdiary/internal/config"
	"github.com/scrapdiary/scrapdiary/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past exports recorded in the diary database",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Source != config.SourceDatabase {
		return fmt.Errorf("export history needs the database source; current source is %q", cfg.Source)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := store.NewStore(db).History(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No exports recorded yet.")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  %-30s  %d days  %d bytes\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Path, r.Days, r.Bytes)
	}
	return nil
}
