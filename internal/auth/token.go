package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"estatehub/internal/models"
)

const (
	// SessionTTL is the absolute lifetime of a login token.
	SessionTTL = 12 * time.Hour
	// DefaultResetTTL is the lifetime of a password-reset token.
	DefaultResetTTL = 1800 * time.Second
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type Claims struct {
	AdminID uint `json:"admin_id"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs an HS256 token embedding the admin id with an
// absolute expiry of SessionTTL from now.
func IssueSessionToken(secret string, adminID uint) (string, error) {
	return issue(secret, adminID, SessionTTL)
}

// IssueResetToken signs a short-lived token for password resets,
// independent of the session token.
func IssueResetToken(secret string, adminID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	return issue(secret, adminID, ttl)
}

func issue(secret string, adminID uint, ttl time.Duration) (string, error) {
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry. Expiry failures are reported as
// ErrTokenExpired, everything else as ErrTokenInvalid.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// VerifyResetToken resolves a reset token to its admin. Any failure —
// malformed token, bad signature, expiry, or a missing admin row — yields
// nil without distinguishing the cause.
func VerifyResetToken(db *gorm.DB, secret, tokenString string) *models.Admin {
	claims, err := ParseToken(secret, tokenString)
	if err != nil {
		return nil
	}

	var admin models.Admin
	if err := db.First(&admin, claims.AdminID).Error; err != nil {
		return nil
	}
	return &admin
}
