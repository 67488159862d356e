package printer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestFormatReceipt(t *testing.T) {
	text := FormatReceipt(Receipt{
		SaleNumber:   "202603150001",
		CustomerName: "Maria Silva",
		Items: []ReceiptItem{
			{ProductName: "Café 500g", Quantity: 2, UnitPrice: 15.5},
		},
		Subtotal:      31,
		Discount:      1,
		Total:         30,
		PaymentMethod: "dinheiro",
	}, fixedTime)

	assert.Contains(t, text, "SISTEMA PDV")
	assert.Contains(t, text, "Data: 15/03/2026 14:30:00")
	assert.Contains(t, text, "Venda: 202603150001")
	assert.Contains(t, text, "Cliente: Maria Silva")
	assert.Contains(t, text, "2x R$ 15.50 = R$ 31.00")
	assert.Contains(t, text, "SUBTOTAL: R$ 31.00")
	assert.Contains(t, text, "DESCONTO: R$ 1.00")
	assert.Contains(t, text, "TOTAL: R$ 30.00")
	assert.Contains(t, text, "PAGAMENTO: DINHEIRO")
	assert.Contains(t, text, "Obrigado pela preferência!")
}

func TestFormatReceiptSemClienteOuDesconto(t *testing.T) {
	text := FormatReceipt(Receipt{SaleNumber: "202603150002", Total: 10, Subtotal: 10}, fixedTime)

	assert.Contains(t, text, "Cliente: Não informado")
	assert.NotContains(t, text, "DESCONTO")
}

func TestFormatSalesReport(t *testing.T) {
	text := FormatSalesReport(SalesReport{
		Period:        "hoje",
		TotalSales:    12,
		TotalRevenue:  480,
		AverageTicket: 40,
		ByPaymentMethod: []PaymentMethodLine{
			{PaymentMethod: "dinheiro", Count: 8, Total: 300},
			{PaymentMethod: "pix", Count: 4, Total: 180},
		},
		TopProducts: []TopProductLine{
			{Name: "Café 500g", Quantity: 20, Total: 310},
		},
	}, fixedTime)

	assert.Contains(t, text, "RELATÓRIO DE VENDAS")
	assert.Contains(t, text, "Período: hoje")
	assert.Contains(t, text, "Total de Vendas: 12")
	assert.Contains(t, text, "Faturamento: R$ 480.00")
	assert.Contains(t, text, "Ticket Médio: R$ 40.00")
	assert.Contains(t, text, "dinheiro: 8 vendas - R$ 300.00")
	assert.Contains(t, text, "1. Café 500g")
}

func TestPrintReceiptSemImpressoraSalvaArquivo(t *testing.T) {
	dir := t.TempDir()
	p := New(Config{ReceiptsDir: dir, ReportsDir: dir})

	result, err := p.PrintReceipt(Receipt{SaleNumber: "202603150003", Total: 5, Subtotal: 5})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(dir, "recibo_202603150003.txt"), result.File)

	content, err := os.ReadFile(result.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Venda: 202603150003")
}

func TestStatusSemImpressoraConfigurada(t *testing.T) {
	p := New(Config{})
	status := p.Status()

	assert.False(t, status.Connected)
	assert.Equal(t, "Simulação", status.Type)
}

func TestTestSemImpressora(t *testing.T) {
	p := New(Config{})
	result := p.Test()

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "modo simulação")
}
