package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/tui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reload the whole journal from the remote store",
	Long: `Reload the whole journal from the remote store, replacing the local copy.
The active selection is cleared. On failure the local copy is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j := GetJournal()
		if err := j.Refresh(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(tui.RenderMessage(fmt.Sprintf("Loaded %d countries", len(j.State().Countries)), false))
		return nil
	},
}

var signInCmd = &cobra.Command{
	Use:   "signin <owner>",
	Short: "Load another identity's journal",
	Long: `Load the journal of <owner> into the local copy. Later commands act as the
owner configured with --owner or DIARIO_OWNER.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().SignIn(cmd.Context(), args[0])
	},
}

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Forget the local copy of the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		GetJournal().SignOut()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd, signInCmd, signOutCmd)
}
