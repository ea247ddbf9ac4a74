package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"estatehub/internal/auth"
	"estatehub/internal/config"
	"estatehub/internal/models"
)

type AuthController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{db: db, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the admin credentials and issues a session token. The
// invalid-credentials answer is the same whether the username exists or the
// password failed.
func (ac *AuthController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing credentials"})
	}

	var admin models.Admin
	err := ac.db.Where("username = ?", req.Username).First(&admin).Error
	if err != nil || !admin.CheckPassword(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}

	token, err := auth.IssueSessionToken(ac.cfg.SecretKey, admin.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to issue token"})
	}

	now := time.Now()
	ac.db.Model(&admin).Update("last_login", &now)

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"token":    token,
		"admin_id": admin.ID,
	})
}
