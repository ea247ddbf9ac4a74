package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"estatehub/internal/auth"
	"estatehub/internal/models"
)

// AdminContextKey is where RequireAdmin stores the resolved admin on the
// request context.
const AdminContextKey = "admin"

// RequireAdmin guards admin-mutation routes. It extracts the bearer token,
// verifies signature and expiry, resolves the embedded admin id to a live
// record, and hands the admin to the wrapped handler via the context. Every
// failure kind maps to its own 401 message.
func RequireAdmin(db *gorm.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is missing"})
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token has expired"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is invalid"})
			}

			var admin models.Admin
			if err := db.First(&admin, claims.AdminID).Error; err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Admin not found"})
			}

			c.Set(AdminContextKey, &admin)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
