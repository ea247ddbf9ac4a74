// Package server wires the Echo application: middleware, CORS, and the
// route table over the public and admin controllers.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"estatehub/internal/config"
	"estatehub/internal/handlers"
	mw "estatehub/internal/middleware"
	"estatehub/internal/upload"
)

func New(db *gorm.DB, cfg *config.Config, uploader *upload.Uploader) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	pc := handlers.NewPropertyController(db, cfg, uploader)
	ac := handlers.NewAuthController(db, cfg)

	api := e.Group("/api")
	api.GET("/properties", pc.List)
	api.GET("/properties/:id", pc.Get)
	api.GET("/analytics", handlers.GetAnalytics)
	api.POST("/admin/login", ac.Login)

	admin := api.Group("/admin", mw.RequireAdmin(db, cfg.SecretKey))
	admin.GET("/properties", pc.AdminList)
	admin.POST("/properties", pc.Create)
	admin.PUT("/properties/:id", pc.Update)
	admin.DELETE("/properties/:id", pc.Delete)

	return e
}
