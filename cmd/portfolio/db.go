package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/portfolio"
)

var seededTables = []string{"profile", "admin", "skills", "projects", "blogs", "experience", "education", "services", "site_content"}

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the schema and seed default content",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			store, err := portfolio.NewStore(cfg.DatabasePath, portfolio.WithAdminPassword(cfg.AdminPassword))
			if err != nil {
				return fmt.Errorf("open %s: %w", cfg.DatabasePath, err)
			}
			defer store.Close()

			counts, err := store.Counts(seededTables...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database ready: %s\n", cfg.DatabasePath)
			for _, t := range seededTables {
				fmt.Fprintf(out, "  %-13s %d\n", t, counts[t])
			}
			return nil
		},
	})
	return cmd
}
