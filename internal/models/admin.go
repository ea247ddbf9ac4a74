package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin represents a back-office operator account. The Password column only
// ever holds a bcrypt hash and is never serialized.
type Admin struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"size:120;not null" json:"-"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
}

// SetPassword replaces the stored hash with one derived from plaintext.
func (a *Admin) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash. Timing
// characteristics are bcrypt's own.
func (a *Admin) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plaintext)) == nil
}
