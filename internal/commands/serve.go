package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"estatehub/internal/config"
	"estatehub/internal/db"
	"estatehub/internal/server"
	"estatehub/internal/upload"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			gdb, err := getDB(cfg)
			if err != nil {
				return err
			}

			// Development convenience only: schema and default admin
			// are managed out-of-band everywhere else.
			if cfg.IsDevelopment() {
				if err := db.AutoMigrate(gdb); err != nil {
					return fmt.Errorf("failed to migrate schema: %v", err)
				}
				if err := db.SeedAdmin(gdb, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
					return fmt.Errorf("failed to seed admin: %v", err)
				}
			}

			uploader, err := upload.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
			if err != nil {
				return fmt.Errorf("failed to configure uploader: %v", err)
			}
			if !uploader.Configured() {
				log.Println("cloudinary credentials not set, using placeholder image URLs")
			}

			e := server.New(gdb, cfg, uploader)
			log.Printf("server starting on port %s", cfg.Port)
			return e.Start(":" + cfg.Port)
		},
	}
}
