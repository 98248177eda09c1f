package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Operador", "operador@loja.com", "senha123", RoleStaff)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "senha123", u.Password, "senha deve ser armazenada como hash")

	_, err = NewUser("", "a@b.com", "senha123", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Nome", "sem-arroba", "senha123", RoleStaff)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("Nome", "a@b.com", "curta", RoleStaff)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUser_CheckPassword(t *testing.T) {
	u, err := NewUser("Admin", "admin@loja.com", "supersecreta", RoleAdmin)
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("supersecreta"))
	assert.False(t, u.CheckPassword("errada"))
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsActive())
}
