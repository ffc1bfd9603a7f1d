package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cityCmd = &cobra.Command{
	Use:   "city",
	Short: "Manage cities",
}

var cityCreateCmd = &cobra.Command{
	Use:   "create <country-id> <name>",
	Short: "Create a city in a country and select it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		city, err := GetJournal().CreateCity(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(city.ID)
		return nil
	},
}

var cityRenameCmd = &cobra.Command{
	Use:   "rename <country-id> <city-id> <name>",
	Short: "Rename a city",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().RenameCity(cmd.Context(), args[0], args[1], args[2])
	},
}

var cityDeleteCmd = &cobra.Command{
	Use:   "delete <country-id> <city-id>",
	Short: "Delete a city with all its pages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().DeleteCity(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(cityCmd)
	cityCmd.AddCommand(cityCreateCmd, cityRenameCmd, cityDeleteCmd)
}
