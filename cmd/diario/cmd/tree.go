package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/tui"
)

var treeIDs bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the journal tree",
	Long: `Display every country, city and page. The active selection is highlighted.

Example:
  diario tree --ids`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(tui.RenderTree(GetJournal().State(), treeIDs))
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeIDs, "ids", false, "show ids next to names")
	rootCmd.AddCommand(treeCmd)
}
