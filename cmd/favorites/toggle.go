package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/internal/clifmt"
	"github.com/wikimedia/favorites/title"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <title>",
	Short: "Favorite or unfavorite a page for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		userID, _ := cmd.Flags().GetInt64("user")
		remove, _ := cmd.Flags().GetBool("remove")

		t, err := title.Parse(args[0])
		if err != nil {
			return fmt.Errorf("bad title %q: %w", args[0], err)
		}

		gdb, err := openDB(cmd.Context(), log)
		if err != nil {
			return err
		}
		store, err := favorites.NewGormStore(gdb)
		if err != nil {
			return err
		}
		engine := favorites.NewEngine(store, log)

		dir := favorites.Favorite
		if remove {
			dir = favorites.Unfavorite
		}

		changed, err := engine.Toggle(cmd.Context(), userID, t, dir)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println(clifmt.Fail(fmt.Sprintf("no change: %s", t.Prefixed())))
			return nil
		}
		fmt.Printf("%s %s\n", dir, t.Prefixed())
		return nil
	},
}

func init() {
	toggleCmd.Flags().Int64("user", 0, "registered user id (required)")
	toggleCmd.Flags().Bool("remove", false, "unfavorite instead of favorite")
	_ = toggleCmd.MarkFlagRequired("user")
}
