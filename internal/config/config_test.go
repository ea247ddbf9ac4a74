package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estatehub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12, cfg.PropertiesPerPage)
	assert.Equal(t, "admin", cfg.DefaultAdminUsername)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
}

func TestDatabaseURLPrefersExplicitDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/estate")

	cfg := config.Load()
	assert.Equal(t, "postgres://app:secret@db:5432/estate", cfg.DatabaseURL)
}

func TestDatabaseURLAssembledFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB", "realestate")
	t.Setenv("POSTGRES_PASSWORD", "hush")

	cfg := config.Load()
	assert.Contains(t, cfg.DatabaseURL, "host=db.internal")
	assert.Contains(t, cfg.DatabaseURL, "dbname=realestate")
	assert.Contains(t, cfg.DatabaseURL, "password=hush")
	assert.Contains(t, cfg.DatabaseURL, "sslmode=disable")
}

func TestAllowedOriginsParsing(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://a.example ,https://b.example,")

	cfg := config.Load()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestBadPerPageFallsBack(t *testing.T) {
	t.Setenv("PROPERTIES_PER_PAGE", "lots")

	cfg := config.Load()
	assert.Equal(t, 12, cfg.PropertiesPerPage)
}
