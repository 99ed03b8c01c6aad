package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/portfolio"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account commands",
	}
	cmd.AddCommand(passwordCmd())
	return cmd
}

func passwordCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Set a new admin password",
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

			if err := store.ResetAdminPassword(username, password); err != nil {
				if errors.Is(err, portfolio.ErrNotFound) {
					return fmt.Errorf("no admin named %q", username)
				}
				return err
			}
			log.Info("admin password changed", zap.String("username", username))
			fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", portfolio.DefaultAdminUsername, "admin username")
	cmd.Flags().StringVar(&password, "password", "", "new password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
