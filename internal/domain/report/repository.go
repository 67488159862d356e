package report

import (
	"context"
	"time"
)

// CashFlowFilter delimita o extrato de caixa
type CashFlowFilter struct {
	Start     *time.Time
	End       *time.Time
	AccountID string
}

// Repository define as consultas de relatório. Todas são somente leitura:
// executar duas vezes sem escritas intermediárias produz o mesmo resultado.
type Repository interface {
	// CashFlow retorna o extrato de movimentações de caixa com resumo
	CashFlow(ctx context.Context, f CashFlowFilter) (*CashFlow, error)

	// DRE monta o demonstrativo de resultado do período
	DRE(ctx context.Context, p Period) (*DRE, error)

	// Sales monta o relatório consolidado de vendas do período
	Sales(ctx context.Context, p Period) (*SalesReport, error)

	// SalesBySalesperson agrega vendas por vendedor no período
	SalesBySalesperson(ctx context.Context, p Period) ([]*SalesBySalesperson, error)

	// SalesByProduct agrega vendas por produto no período
	SalesByProduct(ctx context.Context, p Period) ([]*SalesByProduct, error)

	// SalesByCategory agrega vendas por categoria no período
	SalesByCategory(ctx context.Context, p Period) ([]*SalesByCategory, error)

	// ProfitMargins compara margem cadastrada e realizada por produto
	ProfitMargins(ctx context.Context, p Period) ([]*ProfitMargin, error)

	// DailySales resume as vendas por dia no período
	DailySales(ctx context.Context, p Period) ([]*DailySales, error)

	// Stock lista a posição de estoque com nível calculado
	Stock(ctx context.Context, categoryID string) ([]*StockItem, error)

	// Inventory monta o inventário com resumo financeiro
	Inventory(ctx context.Context, categoryID string) (*Inventory, error)

	// ExpiringProducts lista produtos vencidos ou que vencem nos próximos dias
	ExpiringProducts(ctx context.Context, days int) ([]*ExpiringProduct, error)

	// DelinquentCustomers lista clientes com contas a receber vencidas
	DelinquentCustomers(ctx context.Context) ([]*DelinquentCustomer, error)
}
