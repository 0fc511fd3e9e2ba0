package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scrapdiary",
	Short: "Export a scrapbook diary as a single offline HTML document",
	Long: `Scrapdiary turns a diary of scraps (photos, links, notes, videos and
stickers pinned to calendar pages) into one self-contained HTML file.
Everything the document needs is embedded: styles, navigation, images.
The result opens from disk, with no network and no server.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".scrapdiary.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
