package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/internal/clifmt"
	"github.com/wikimedia/favorites/title"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a user's favorites grouped by namespace",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		userID, _ := cmd.Flags().GetInt64("user")
		noTalk, _ := cmd.Flags().GetBool("no-talk")

		gdb, err := openDB(cmd.Context(), log)
		if err != nil {
			return err
		}
		store, err := favorites.NewGormStore(gdb)
		if err != nil {
			return err
		}

		entries, err := store.ListAll(cmd.Context(), userID, favorites.ListOptions{ExcludeTalk: noTalk})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(clifmt.Dim("no favorites"))
			return nil
		}

		for _, g := range favorites.GroupByNamespace(entries) {
			fmt.Println(clifmt.Headerf("%s", g.Heading))
			for _, e := range g.Entries {
				line := "  " + entryText(e)
				switch {
				case !e.Exists:
					line += " " + clifmt.Warn("(missing)")
				case e.Redirect:
					line += " " + clifmt.Dim("(redirect)")
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

// entryText renders a stored entry as a prefixed title, falling back to
// the raw key when the stored row no longer normalizes.
func entryText(e favorites.Entry) string {
	t, err := title.Make(e.Namespace, e.Key)
	if err != nil {
		return fmt.Sprintf("ns%d:%s", e.Namespace, e.Key)
	}
	return t.Prefixed()
}

func init() {
	listCmd.Flags().Int64("user", 0, "registered user id (required)")
	listCmd.Flags().Bool("no-talk", false, "hide talk-page entries")
	_ = listCmd.MarkFlagRequired("user")
}
