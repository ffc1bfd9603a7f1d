package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"diario/internal/adapters/editor"
	"diario/internal/adapters/tui"
	"diario/internal/application"
)

var (
	pageCopy  bool
	pageDraft bool
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Manage pages",
}

var pageCreateCmd = &cobra.Command{
	Use:   "create <country-id> <city-id> <title>",
	Short: "Create an empty page and select it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetJournal().CreatePage(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(page.ID)
		return nil
	},
}

var pageTitleCmd = &cobra.Command{
	Use:   "title <country-id> <city-id> <page-id> <title>",
	Short: "Change a page's title",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().UpdatePageTitle(cmd.Context(), args[0], args[1], args[2], args[3])
	},
}

var pageWriteCmd = &cobra.Command{
	Use:   "write <country-id> <city-id> <page-id> [content]",
	Short: "Replace a page's content",
	Long: `Replace a page's content. Without [content] it is read from stdin.

By default the content is saved: the page's updated time moves. With --draft
it is stored as a draft instead; the local copy always keeps a draft even when
the remote store cannot be reached.

Examples:
  diario page write $C $CI $P "Walked the Philosopher's Path"
  cat notes.md | diario page write $C $CI $P --draft`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := contentArg(cmd, args)
		if err != nil {
			return err
		}

		j := GetJournal()
		if pageDraft {
			synced, err := j.UpdatePageDraft(cmd.Context(), args[0], args[1], args[2], content)
			if err != nil {
				return err
			}
			if !synced {
				fmt.Println(tui.RenderMessage("Draft kept locally; it will be sent with the next save", false))
			}
			return nil
		}

		_, err = j.SavePage(cmd.Context(), args[0], args[1], args[2], content)
		return err
	},
}

var pageEditCmd = &cobra.Command{
	Use:   "edit <country-id> <city-id> <page-id>",
	Short: "Edit a page in $EDITOR",
	Long: `Open a page's content in $EDITOR. When the editor exits the content is
saved, or kept as a draft with --draft. Nothing is written if it is unchanged.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		j := GetJournal()
		page, ok := j.State().Page(args[0], args[1], args[2])
		if !ok {
			return fmt.Errorf("page %s: %w", args[2], application.ErrNotFound)
		}

		content, err := editor.New().Edit(page.Content)
		if err != nil {
			return err
		}
		if content == page.Content {
			fmt.Println(tui.RenderMessage("No changes", false))
			return nil
		}

		if pageDraft {
			_, err = j.UpdatePageDraft(cmd.Context(), args[0], args[1], args[2], content)
			return err
		}
		_, err = j.SavePage(cmd.Context(), args[0], args[1], args[2], content)
		return err
	},
}

var pageShowCmd = &cobra.Command{
	Use:   "show <country-id> <city-id> <page-id>",
	Short: "Show a page",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, ok := GetJournal().State().Page(args[0], args[1], args[2])
		if !ok {
			return fmt.Errorf("page %s: %w", args[2], application.ErrNotFound)
		}
		if pageCopy {
			if err := clipboard.WriteAll(page.Content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
		}
		fmt.Print(tui.RenderPage(page))
		return nil
	},
}

var pageDeleteCmd = &cobra.Command{
	Use:   "delete <country-id> <city-id> <page-id>",
	Short: "Delete a page",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return GetJournal().DeletePage(cmd.Context(), args[0], args[1], args[2])
	},
}

func contentArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 4 {
		return args[3], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no content given and stdin is a terminal")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

func init() {
	pageShowCmd.Flags().BoolVarP(&pageCopy, "copy", "c", false, "copy the content to the clipboard")
	pageWriteCmd.Flags().BoolVar(&pageDraft, "draft", false, "store as a draft without moving the updated time")
	pageEditCmd.Flags().BoolVar(&pageDraft, "draft", false, "store as a draft without moving the updated time")

	rootCmd.AddCommand(pageCmd)
	pageCmd.AddCommand(pageCreateCmd, pageTitleCmd, pageWriteCmd, pageEditCmd, pageShowCmd, pageDeleteCmd)
}
