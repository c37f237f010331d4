package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wikimedia/favorites/favorites"
)

type exportEntry struct {
	Title     string `json:"title" yaml:"title"`
	Namespace int    `json:"namespace" yaml:"namespace"`
	Missing   bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
	Redirect  bool   `json:"redirect,omitempty" yaml:"redirect,omitempty"`
}

type exportGroup struct {
	Heading string        `json:"heading" yaml:"heading"`
	Entries []exportEntry `json:"entries" yaml:"entries"`
}

type exportDoc struct {
	UserID int64         `json:"user_id" yaml:"user_id"`
	Groups []exportGroup `json:"groups" yaml:"groups"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump a user's favorites as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		userID, _ := cmd.Flags().GetInt64("user")
		format, _ := cmd.Flags().GetString("format")

		gdb, err := openDB(cmd.Context(), log)
		if err != nil {
			return err
		}
		store, err := favorites.NewGormStore(gdb)
		if err != nil {
			return err
		}

		entries, err := store.ListAll(cmd.Context(), userID, favorites.ListOptions{})
		if err != nil {
			return err
		}

		doc := exportDoc{UserID: userID}
		for _, g := range favorites.GroupByNamespace(entries) {
			eg := exportGroup{Heading: g.Heading}
			for _, e := range g.Entries {
				eg.Entries = append(eg.Entries, exportEntry{
					Title:     entryText(e),
					Namespace: e.Namespace,
					Missing:   !e.Exists,
					Redirect:  e.Redirect,
				})
			}
			doc.Groups = append(doc.Groups, eg)
		}

		switch format {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(doc)
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", format)
		}
	},
}

func init() {
	exportCmd.Flags().Int64("user", 0, "registered user id (required)")
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	_ = exportCmd.MarkFlagRequired("user")
}
