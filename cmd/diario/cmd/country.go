package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/tui"
	"diario/internal/application"
)

var countryIcon string

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Manage countries",
}

var countryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a country and select it",
	Long: `Create a country and select it.

Examples:
  diario country create "Japan" --icon 🇯🇵
  diario country create "Somewhere"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country, err := GetJournal().CreateCountry(cmd.Context(), args[0], countryIcon)
		if err != nil {
			return err
		}
		fmt.Println(country.ID)
		return nil
	},
}

var countryRenameCmd = &cobra.Command{
	Use:   "rename <country-id> <name>",
	Short: "Rename a country",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().RenameCountry(cmd.Context(), args[0], args[1])
	},
}

var countryNotesCmd = &cobra.Command{
	Use:   "notes <country-id> [notes]",
	Short: "Replace a country's notes",
	Long: `Replace a country's notes. Without [notes] the notes are cleared.

Examples:
  diario country notes 3f2a... "Buy a rail pass before arriving"
  diario country notes 3f2a...`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := ""
		if len(args) == 2 {
			notes = args[1]
		}
		return GetJournal().UpdateCountryNotes(cmd.Context(), args[0], notes)
	},
}

var countryShowCmd = &cobra.Command{
	Use:   "show <country-id>",
	Short: "Show a country with its notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country, ok := GetJournal().State().Country(args[0])
		if !ok {
			return fmt.Errorf("country %s: %w", args[0], application.ErrNotFound)
		}
		fmt.Print(tui.RenderCountry(country))
		return nil
	},
}

var countryDeleteCmd = &cobra.Command{
	Use:   "delete <country-id>",
	Short: "Delete a country with all its cities and pages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().DeleteCountry(cmd.Context(), args[0])
	},
}

func init() {
	countryCreateCmd.Flags().StringVar(&countryIcon, "icon", "", "emoji shown next to the name (default 🌎)")

	rootCmd.AddCommand(countryCmd)
	countryCmd.AddCommand(countryCreateCmd, countryRenameCmd, countryNotesCmd, countryShowCmd, countryDeleteCmd)
}
