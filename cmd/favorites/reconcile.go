package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/internal/clifmt"
	"github.com/wikimedia/favorites/internal/strutil"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [file]",
	Short: "Replace a user's favorites with a newline-separated title list",
	Long: "reconcile reads one title per line (from a file, or stdin when no\n" +
		"file is given) and makes the user's stored favorites match. An empty\n" +
		"input clears every favorite.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		userID, _ := cmd.Flags().GetInt64("user")

		var raw []byte
		var err error
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("read title list: %w", err)
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

		res, err := engine.Reconcile(cmd.Context(), userID, strutil.SplitLines(string(raw)))
		if err != nil {
			return err
		}

		for _, t := range res.Added {
			fmt.Println(clifmt.Success("+ " + t))
		}
		for _, t := range res.Removed {
			fmt.Println(clifmt.Fail("- " + t))
		}
		fmt.Printf("%d added, %d removed\n", len(res.Added), len(res.Removed))
		return nil
	},
}

func init() {
	reconcileCmd.Flags().Int64("user", 0, "registered user id (required)")
	_ = reconcileCmd.MarkFlagRequired("user")
}
