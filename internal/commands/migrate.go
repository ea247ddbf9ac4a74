package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estatehub/internal/config"
	"estatehub/internal/db"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := getDB(config.Load())
			if err != nil {
				return err
			}

			if err := db.AutoMigrate(gdb); err != nil {
				return fmt.Errorf("failed to migrate schema: %v", err)
			}

			fmt.Println("Schema migrated successfully")
			return nil
		},
	}
}
