// Package report define as projeções de leitura do sistema. Nenhum tipo aqui
// carrega invariantes: são agregações sobre o que o motor financeiro gravou.
package report

import (
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
)

// Period delimita o intervalo de um relatório
type Period struct {
	Start time.Time `json:"data_inicio"`
	End   time.Time `json:"data_fim"`
}

// PeriodFromTag resolve as tags de período usadas pela interface
// ("hoje", "mes", "ano") para um intervalo concreto.
func PeriodFromTag(tag string, now time.Time) Period {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch tag {
	case "mes":
		return Period{Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), End: today}
	case "ano":
		return Period{Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), End: today}
	default: // "hoje"
		return Period{Start: today, End: today}
	}
}

// CashFlow é o extrato de movimentações com resumo do período
type CashFlow struct {
	Movements []*account.Movement `json:"movimentacoes"`
	Summary   CashFlowSummary     `json:"resumo"`
}

// CashFlowSummary resume entradas, saídas e saldo líquido
type CashFlowSummary struct {
	TotalIn    float64 `json:"total_entradas"`
	TotalOut   float64 `json:"total_saidas"`
	NetBalance float64 `json:"saldo_liquido"`
}

// DRE é o demonstrativo de resultado do exercício
type DRE struct {
	Period        Period            `json:"periodo"`
	GrossRevenue  float64           `json:"receita_bruta"`
	CostOfSales   float64           `json:"custo_vendas"`
	GrossProfit   float64           `json:"lucro_bruto"`
	Expenses      []ExpenseByGroup  `json:"despesas"`
	TotalExpenses float64           `json:"total_despesas"`
	NetProfit     float64           `json:"lucro_liquido"`
	GrossMargin   float64           `json:"margem_bruta"`
	NetMargin     float64           `json:"margem_liquida"`
}

// ExpenseByGroup agrega despesas por categoria
type ExpenseByGroup struct {
	Category string  `json:"categoria"`
	Total    float64 `json:"total"`
}

// SalesSummary resume as vendas de um período
type SalesSummary struct {
	TotalSales    int     `json:"total_vendas"`
	TotalRevenue  float64 `json:"faturamento_total"`
	AverageTicket float64 `json:"ticket_medio"`
}

// SalesReport agrega o resumo, a abertura por forma de pagamento e os
// produtos mais vendidos de um período
type SalesReport struct {
	Period           Period                 `json:"periodo"`
	Summary          SalesSummary           `json:"resumo"`
	ByPaymentMethod  []SalesByPaymentMethod `json:"vendas_por_forma_pagamento"`
	TopProducts      []TopProduct           `json:"produtos_mais_vendidos"`
}

// SalesByPaymentMethod agrega vendas por forma de pagamento
type SalesByPaymentMethod struct {
	PaymentMethod string  `json:"forma_pagamento"`
	Count         int     `json:"quantidade"`
	Total         float64 `json:"valor_total"`
}

// TopProduct é uma linha do ranking de produtos vendidos
type TopProduct struct {
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade_vendida"`
	Total    float64 `json:"valor_total"`
}

// SalesBySalesperson agrega vendas e lucro por vendedor
type SalesBySalesperson struct {
	Name          string  `json:"vendedor_nome"`
	TotalSales    int     `json:"total_vendas"`
	TotalRevenue  float64 `json:"faturamento_total"`
	AverageTicket float64 `json:"ticket_medio"`
	TotalProfit   float64 `json:"lucro_total"`
}

// SalesByProduct agrega faturamento e lucro por produto
type SalesByProduct struct {
	Name         string  `json:"produto_nome"`
	Barcode      string  `json:"codigo_barras"`
	Category     string  `json:"categoria_nome"`
	Quantity     int     `json:"quantidade_vendida"`
	TotalRevenue float64 `json:"faturamento_total"`
	TotalProfit  float64 `json:"lucro_total"`
}

// SalesByCategory agrega vendas por categoria de produto
type SalesByCategory struct {
	Category     string  `json:"categoria_nome"`
	Products     int     `json:"produtos_diferentes"`
	Quantity     int     `json:"quantidade_vendida"`
	TotalRevenue float64 `json:"faturamento_total"`
	TotalProfit  float64 `json:"lucro_total"`
}

// ProfitMargin compara a margem cadastrada com a margem realizada por produto
type ProfitMargin struct {
	Name         string  `json:"produto_nome"`
	SalePrice    float64 `json:"preco_venda"`
	Cost         float64 `json:"custo_produto"`
	Quantity     int     `json:"quantidade_vendida"`
	TotalRevenue float64 `json:"faturamento_total"`
	TotalProfit  float64 `json:"lucro_total"`
	RealMargin   float64 `json:"margem_real"`
}

// DailySales é uma linha do resumo diário de vendas
type DailySales struct {
	Date          time.Time `json:"data"`
	TotalSales    int       `json:"total_vendas"`
	TotalRevenue  float64   `json:"faturamento_total"`
	AverageTicket float64   `json:"ticket_medio"`
}

// StockItem é uma linha do relatório de estoque
type StockItem struct {
	ProductID    string  `json:"produto_id"`
	Name         string  `json:"produto_nome"`
	Barcode      string  `json:"codigo_barras"`
	CurrentStock int     `json:"estoque_atual"`
	MinStock     int     `json:"estoque_minimo"`
	Cost         float64 `json:"custo"`
	StockValue   float64 `json:"valor_estoque"`
	Category     string  `json:"categoria_nome"`
	Level        string  `json:"nivel_estoque"`
}

// Inventory é o relatório de inventário com resumo financeiro
type Inventory struct {
	Products []StockItem      `json:"produtos"`
	Summary  InventorySummary `json:"resumo"`
}

// InventorySummary resume o inventário
type InventorySummary struct {
	TotalProducts int     `json:"total_produtos"`
	TotalValue    float64 `json:"valor_total_estoque"`
	OutOfStock    int     `json:"produtos_sem_estoque"`
	LowStock      int     `json:"produtos_estoque_baixo"`
}

// ExpiringProduct é um produto vencido ou próximo do vencimento
type ExpiringProduct struct {
	ProductID    string    `json:"produto_id"`
	Name         string    `json:"produto_nome"`
	Barcode      string    `json:"codigo_barras"`
	CurrentStock int       `json:"estoque_atual"`
	ExpiryDate   time.Time `json:"data_validade"`
	DaysLeft     int       `json:"dias_restantes"`
	Status       string    `json:"status"`
}

// DelinquentCustomer é um cliente com contas a receber vencidas
type DelinquentCustomer struct {
	Name        string    `json:"cliente_nome"`
	Email       string    `json:"email"`
	Phone       string    `json:"telefone"`
	OverdueBills int      `json:"contas_em_atraso"`
	TotalOverdue float64  `json:"valor_total_em_atraso"`
	OldestDue   time.Time `json:"vencimento_mais_antigo"`
}
