package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/models"
)

func TestSetPasswordStoresHashOnly(t *testing.T) {
	admin := models.Admin{Username: "admin"}
	require.NoError(t, admin.SetPassword("hunter2"))

	assert.NotEmpty(t, admin.Password)
	assert.NotEqual(t, "hunter2", admin.Password)
}

func TestCheckPassword(t *testing.T) {
	admin := models.Admin{Username: "admin"}
	require.NoError(t, admin.SetPassword("hunter2"))

	assert.True(t, admin.CheckPassword("hunter2"))
	assert.False(t, admin.CheckPassword("hunter3"))
	assert.False(t, admin.CheckPassword(""))
}

func TestUsernameUniqueness(t *testing.T) {
	db := setupTestDB(t)

	first := models.Admin{Username: "admin", IsActive: true}
	require.NoError(t, first.SetPassword("pw-one"))
	require.NoError(t, db.Create(&first).Error)

	second := models.Admin{Username: "admin", IsActive: true}
	require.NoError(t, second.SetPassword("pw-two"))
	assert.Error(t, db.Create(&second).Error)
}
