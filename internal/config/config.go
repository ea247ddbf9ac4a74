package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// built once at startup and passed down explicitly; no package keeps a
// global copy.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	SecretKey string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AllowedOrigins []string

	DefaultAdminUsername string
	DefaultAdminPassword string

	PropertiesPerPage int
}

func Load() *Config {
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	perPage, err := strconv.Atoi(getenv("PROPERTIES_PER_PAGE", "12"))
	if err != nil || perPage <= 0 {
		perPage = 12
	}

	return &Config{
		Env:                  getenv("APP_ENV", "development"),
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          databaseURL(),
		SecretKey:            getenv("SECRET_KEY", "dev-key-change-in-production"),
		CloudinaryCloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		AllowedOrigins:       splitOrigins(origins),
		DefaultAdminUsername: getenv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getenv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		PropertiesPerPage:    perPage,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// databaseURL prefers an explicit DATABASE_URL and otherwise assembles a
// lib/pq key=value DSN from the discrete POSTGRES_* variables.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	parts := []string{
		"host=" + getenv("POSTGRES_HOST", "127.0.0.1"),
		"port=" + getenv("POSTGRES_PORT", "5432"),
		"user=" + getenv("POSTGRES_USER", "postgres"),
		"dbname=" + getenv("POSTGRES_DB", "estatehub"),
		"sslmode=" + getenv("POSTGRES_SSLMODE", "disable"),
	}
	if pass := os.Getenv("POSTGRES_PASSWORD"); pass != "" {
		parts = append(parts, "password="+pass)
	}
	return strings.Join(parts, " ")
}

func splitOrigins(s string) []string {
	raw := strings.Split(s, ",")
	origins := make([]string, 0, len(raw))
	for _, o := range raw {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
