package commands

import (
	"fmt"

	"gorm.io/gorm"

	"estatehub/internal/config"
	"estatehub/internal/db"
)

func getDB(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	return gdb, nil
}
