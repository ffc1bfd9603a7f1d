package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/tui"
)

var selectCmd = &cobra.Command{
	Use:   "select [country-id [city-id [page-id]]]",
	Short: "Change the active selection",
	Long: `Change the active country, city and page. Without arguments the selection
is cleared. The selection is kept locally and never sent to the remote store.

Examples:
  diario select $C
  diario select $C $CI $P
  diario select`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		j := GetJournal()
		ids := make([]string, 3)
		copy(ids, args)

		// each level clears the ones below it, so set them top-down
		if err := j.SetActiveCountry(ids[0]); err != nil {
			return err
		}
		if ids[1] != "" {
			if err := j.SetActiveCity(ids[1]); err != nil {
				return err
			}
		}
		if ids[2] != "" {
			if err := j.SetActivePage(ids[2]); err != nil {
				return err
			}
		}
		return nil
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active selection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j := GetJournal()
		country, ok := j.ActiveCountry()
		if !ok {
			fmt.Println(tui.RenderMessage("Nothing selected", false))
			return nil
		}
		fmt.Print(tui.RenderCountry(country))
		if city, ok := j.ActiveCity(); ok {
			fmt.Printf("  %s\n", city.Name)
		}
		if page, ok := j.ActivePage(); ok {
			fmt.Print(tui.RenderPage(page))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd, activeCmd)
}
