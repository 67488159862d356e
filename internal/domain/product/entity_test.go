package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCalculaMargem(t *testing.T) {
	p, err := NewProduct("Café 500g", 15, 10, 20, 5)
	require.NoError(t, err)

	assert.Equal(t, 50.0, p.ProfitMargin)
	assert.Equal(t, 20, p.InitialStock)
	assert.Equal(t, 20, p.CurrentStock)
	assert.True(t, p.Active)
}

func TestNewProductSemCustoTemMargemZero(t *testing.T) {
	p, err := NewProduct("Brinde", 5, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.ProfitMargin)
}

func TestNewProductValidaDados(t *testing.T) {
	_, err := NewProduct("", 10, 5, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Café", 0, 5, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestLowStock(t *testing.T) {
	p, err := NewProduct("Café", 10, 5, 3, 5)
	require.NoError(t, err)
	assert.True(t, p.LowStock())

	p.CurrentStock = 6
	assert.False(t, p.LowStock())
}
