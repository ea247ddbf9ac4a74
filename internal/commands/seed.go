package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estatehub/internal/config"
	"estatehub/internal/db"
)

func SeedAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the default admin account if absent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			gdb, err := getDB(cfg)
			if err != nil {
				return err
			}

			if err := db.SeedAdmin(gdb, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
				return fmt.Errorf("failed to seed admin: %v", err)
			}

			fmt.Printf("Admin %q is in place\n", cfg.DefaultAdminUsername)
			return nil
		},
	}
}
