package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleExigeUsuario(t *testing.T) {
	_, err := NewSale(nil, "", 0, "dinheiro", "")
	assert.ErrorIs(t, err, ErrEmptyUser)
}

func TestAddItemRecalculaTotais(t *testing.T) {
	s, err := NewSale(nil, "u1", 5, "pix", "")
	require.NoError(t, err)

	s.AddItem("p1", 2, 10, 4)
	s.AddItem("p2", 1, 15, 0)

	assert.Equal(t, 35.0, s.Subtotal)
	assert.Equal(t, 30.0, s.Total)
	assert.Equal(t, StatusCompleted, s.Status)

	require.Len(t, s.Items, 2)
	assert.Equal(t, 20.0, s.Items[0].Subtotal)
	assert.Equal(t, 12.0, s.Items[0].Profit)
	assert.Equal(t, 15.0, s.Items[1].Profit)
}
