package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEntregaParaTodosOsAssinantes(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	assert.Equal(t, 2, h.Subscribers())

	h.Publish("produtos")

	assert.Equal(t, "produtos", <-ch1)
	assert.Equal(t, "produtos", <-ch2)
}

func TestCancelRemoveAssinanteEFechaCanal(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	cancel()

	assert.Equal(t, 0, h.Subscribers())

	_, open := <-ch
	assert.False(t, open)

	// cancelar duas vezes é seguro
	cancel()
}

func TestPublishNaoBloqueiaComCanalCheio(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	defer cancel()

	// estoura a capacidade do canal; os excedentes são descartados
	for i := 0; i < 20; i++ {
		h.Publish("vendas")
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			require.Equal(t, cap(ch), received)
			return
		}
	}
}
