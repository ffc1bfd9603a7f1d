package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/filesystem"
	"diario/internal/adapters/obsidian"
	"diario/internal/adapters/tui"
)

var exportObsidian bool

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the journal out as markdown files",
	Long: `Write the local journal to <dir> as one folder per country and city, with
a README.md holding each country's notes and one markdown file per page.
<dir> must be missing or empty. The result can be opened as an Obsidian vault.

Examples:
  diario export ~/Documents/travels
  diario export ~/Vaults/travels --obsidian`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter := filesystem.NewExporter(args[0])
		summary, err := exporter.Export(GetJournal().State())
		if err != nil {
			return err
		}
		fmt.Println(tui.RenderMessage(fmt.Sprintf("Exported %d countries, %d cities and %d pages to %s",
			summary.Countries, summary.Cities, summary.Pages, exporter.Root()), false))

		if exportObsidian && summary.Entry != "" {
			link, err := obsidian.Link(exporter.Root(), summary.Entry)
			if err != nil {
				return err
			}
			fmt.Println(link)
			if err := obsidian.NewLauncher().Launch(link); err != nil {
				return fmt.Errorf("failed to open Obsidian: %w", err)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportObsidian, "obsidian", false, "open the export in Obsidian")
	rootCmd.AddCommand(exportCmd)
}
