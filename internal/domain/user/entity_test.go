package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserGuardaSenhaComoHash(t *testing.T) {
	u, err := NewUser("Maria", "maria@loja.com", "segredo", RoleSalesman)
	require.NoError(t, err)

	assert.NotEqual(t, "segredo", u.Password)
	assert.True(t, u.CheckPassword("segredo"))
	assert.False(t, u.CheckPassword("errada"))
}

func TestNewUserValidaDados(t *testing.T) {
	_, err := NewUser("", "maria@loja.com", "segredo", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Maria", "", "segredo", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptyEmail)
}
