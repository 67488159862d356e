package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountComecaComSaldoInicial(t *testing.T) {
	a, err := NewAccount("Caixa Principal", TypeCashDrawer, 150)
	require.NoError(t, err)

	assert.Equal(t, 150.0, a.OpeningBalance)
	assert.Equal(t, 150.0, a.CurrentBalance)
	assert.True(t, a.Active)

	_, err = NewAccount("", TypeChecking, 0)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSignedAmount(t *testing.T) {
	in := NewMovement("c1", MovementIn, CategorySale, 80, "Venda 001", "", "u1")
	out := NewMovement("c1", MovementOut, CategoryWithdrawal, 30, "Sangria", "", "u1")

	assert.Equal(t, 80.0, in.SignedAmount())
	assert.Equal(t, -30.0, out.SignedAmount())
}
