package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diego-EC/questioner-backend/internal/logger"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

func createRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-roles",
		Short: "Insert the Admin and User roles if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			created, err := repository.NewRoles(store.New(db.DB())).Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Roles created: %d\n", created)
			return nil
		},
	}
}
