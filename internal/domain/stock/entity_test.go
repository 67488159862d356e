package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMovementDerivaTipoDoSinal(t *testing.T) {
	in := NewMovement("p1", 5, 10, 15, "Compra", "u1")
	assert.Equal(t, MovementIn, in.Type)
	assert.Equal(t, 5, in.Quantity)
	assert.Equal(t, 10, in.PreviousQty)
	assert.Equal(t, 15, in.CurrentQty)

	out := NewMovement("p1", -3, 15, 12, "Venda", "u1")
	assert.Equal(t, MovementOut, out.Type)
	// a quantidade gravada é sempre absoluta
	assert.Equal(t, 3, out.Quantity)
}
