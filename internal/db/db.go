package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"estatehub/internal/config"
	"estatehub/internal/models"
)

// Connect opens the postgres database and tunes the connection pool.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gdb, nil
}

// AutoMigrate creates or updates the application tables.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.Property{}, &models.Admin{})
}

// SeedAdmin creates the default admin account if it does not exist yet.
// Running it twice is a no-op.
func SeedAdmin(gdb *gorm.DB, username, password string) error {
	var existing models.Admin
	err := gdb.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.Admin{Username: username, IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded default admin %q", username)
	return nil
}
