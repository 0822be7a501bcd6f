package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			if err := database.Migrate(db.DB()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
