package payable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayableValidaDados(t *testing.T) {
	_, err := NewPayable(nil, "", "fixas", 100, time.Now(), "u1")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewPayable(nil, "Energia", "fixas", 0, time.Now(), "u1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApplyPaymentParcialDepoisTotal(t *testing.T) {
	p, err := NewPayable(nil, "Energia", "fixas", 500, time.Now(), "u1")
	require.NoError(t, err)

	when := time.Now()
	require.NoError(t, p.ApplyPayment(200, "pix", "c1", when))
	assert.Equal(t, StatusPartial, p.Status)
	assert.Equal(t, 200.0, p.PaidAmount)
	assert.Equal(t, 300.0, p.RemainingAmount)

	require.NoError(t, p.ApplyPayment(300, "pix", "c1", when))
	assert.Equal(t, StatusPaid, p.Status)
	assert.Equal(t, 0.0, p.RemainingAmount)

	// conta quitada não aceita novos pagamentos
	assert.ErrorIs(t, p.ApplyPayment(10, "pix", "c1", when), ErrAlreadyPaid)
	assert.Equal(t, 500.0, p.PaidAmount)
}

func TestApplyPaymentAcimaDoDevido(t *testing.T) {
	p, err := NewPayable(nil, "Energia", "fixas", 100, time.Now(), "u1")
	require.NoError(t, err)

	// valor acima do restante não é rejeitado; o restante fica negativo
	require.NoError(t, p.ApplyPayment(150, "dinheiro", "c1", time.Now()))
	assert.Equal(t, StatusPaid, p.Status)
	assert.Equal(t, -50.0, p.RemainingAmount)
}
