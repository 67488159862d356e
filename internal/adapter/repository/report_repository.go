package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/report"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

// ReportRepository implementa a interface report.Repository. Só faz leitura:
// todas as consultas agregam sobre o que o motor financeiro gravou.
type ReportRepository struct {
	db database.Querier
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db database.Querier) report.Repository {
	return &ReportRepository{
		db: db,
	}
}

// CashFlow implementa report.Repository.CashFlow
func (r *ReportRepository) CashFlow(ctx context.Context, f report.CashFlowFilter) (*report.CashFlow, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT m.id, m.conta_id, COALESCE(c.nome, ''), m.tipo,
			m.categoria, m.valor, m.descricao, m.documento, m.usuario_id,
			COALESCE(u.nome, ''), m.data_movimentacao
		FROM movimentacoes_caixa m
		LEFT JOIN contas_bancarias c ON c.id = m.conta_id
		LEFT JOIN usuarios u ON u.id = m.usuario_id
		WHERE 1=1`
	args := []any{}
	idx := 1

	if f.AccountID != "" {
		query += fmt.Sprintf(" AND m.conta_id = $%d", idx)
		args = append(args, f.AccountID)
		idx++
	}
	if f.Start != nil {
		query += fmt.Sprintf(" AND m.data_movimentacao >= $%d", idx)
		args = append(args, *f.Start)
		idx++
	}
	if f.End != nil {
		query += fmt.Sprintf(" AND m.data_movimentacao <= $%d", idx)
		args = append(args, *f.End)
		idx++
	}
	query += " ORDER BY m.data_movimentacao DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar fluxo de caixa: %w", err)
	}
	defer rows.Close()

	flow := &report.CashFlow{Movements: make([]*account.Movement, 0)}
	for rows.Next() {
		var m account.Movement
		if err := rows.Scan(
			&m.ID, &m.AccountID, &m.AccountName, &m.Type, &m.Category,
			&m.Amount, &m.Description, &m.Document, &m.UserID, &m.UserName,
			&m.OccurredAt); err != nil {
			return nil, fmt.Errorf("erro ao ler movimentação: %w", err)
		}
		flow.Movements = append(flow.Movements, &m)

		switch m.Type {
		case account.MovementIn:
			flow.Summary.TotalIn += m.Amount
		case account.MovementOut:
			flow.Summary.TotalOut += m.Amount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao consultar fluxo de caixa: %w", err)
	}
	flow.Summary.NetBalance = flow.Summary.TotalIn - flow.Summary.TotalOut

	return flow, nil
}

// DRE implementa report.Repository.DRE
func (r *ReportRepository) DRE(ctx context.Context, p report.Period) (*report.DRE, error) {
	q := database.QuerierFrom(ctx, r.db)

	dre := &report.DRE{Period: p, Expenses: make([]report.ExpenseByGroup, 0)}

	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(v.total), 0),
			COALESCE(SUM(i.custo_unitario * i.quantidade), 0)
		FROM vendas v
		LEFT JOIN itens_venda i ON i.venda_id = v.id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date`,
		p.Start, p.End).Scan(&dre.GrossRevenue, &dre.CostOfSales)
	if err != nil {
		return nil, fmt.Errorf("erro ao apurar receita: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT categoria, COALESCE(SUM(valor), 0)
		FROM despesas
		WHERE data_despesa::date BETWEEN $1::date AND $2::date
		GROUP BY categoria
		ORDER BY 2 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao apurar despesas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g report.ExpenseByGroup
		if err := rows.Scan(&g.Category, &g.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler grupo de despesas: %w", err)
		}
		dre.Expenses = append(dre.Expenses, g)
		dre.TotalExpenses += g.Total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao apurar despesas: %w", err)
	}

	dre.GrossProfit = dre.GrossRevenue - dre.CostOfSales
	dre.NetProfit = dre.GrossProfit - dre.TotalExpenses
	if dre.GrossRevenue > 0 {
		dre.GrossMargin = dre.GrossProfit / dre.GrossRevenue * 100
		dre.NetMargin = dre.NetProfit / dre.GrossRevenue * 100
	}

	return dre, nil
}

// Sales implementa report.Repository.Sales
func (r *ReportRepository) Sales(ctx context.Context, p report.Period) (*report.SalesReport, error) {
	q := database.QuerierFrom(ctx, r.db)

	rep := &report.SalesReport{
		Period:          p,
		ByPaymentMethod: make([]report.SalesByPaymentMethod, 0),
		TopProducts:     make([]report.TopProduct, 0),
	}

	err := q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(AVG(total), 0)
		FROM vendas
		WHERE criado_em::date BETWEEN $1::date AND $2::date`,
		p.Start, p.End).Scan(&rep.Summary.TotalSales, &rep.Summary.TotalRevenue, &rep.Summary.AverageTicket)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT forma_pagamento, COUNT(*), COALESCE(SUM(total), 0)
		FROM vendas
		WHERE criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY forma_pagamento
		ORDER BY 3 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por forma de pagamento: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pm report.SalesByPaymentMethod
		if err := rows.Scan(&pm.PaymentMethod, &pm.Count, &pm.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler forma de pagamento: %w", err)
		}
		rep.ByPaymentMethod = append(rep.ByPaymentMethod, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por forma de pagamento: %w", err)
	}

	prodRows, err := q.Query(ctx,
		`SELECT COALESCE(pr.nome, ''), COALESCE(SUM(i.quantidade), 0),
			COALESCE(SUM(i.subtotal), 0)
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		LEFT JOIN produtos pr ON pr.id = i.produto_id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY pr.nome
		ORDER BY 2 DESC
		LIMIT 10`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao apurar produtos mais vendidos: %w", err)
	}
	defer prodRows.Close()

	for prodRows.Next() {
		var tp report.TopProduct
		if err := prodRows.Scan(&tp.Name, &tp.Quantity, &tp.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler produto mais vendido: %w", err)
		}
		rep.TopProducts = append(rep.TopProducts, tp)
	}
	if err := prodRows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao apurar produtos mais vendidos: %w", err)
	}

	return rep, nil
}

// SalesBySalesperson implementa report.Repository.SalesBySalesperson
func (r *ReportRepository) SalesBySalesperson(ctx context.Context, p report.Period) ([]*report.SalesBySalesperson, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT COALESCE(u.nome, ''), COUNT(DISTINCT v.id),
			COALESCE(SUM(v.total), 0), COALESCE(AVG(v.total), 0),
			COALESCE((SELECT SUM(i.lucro) FROM itens_venda i
				JOIN vendas v2 ON v2.id = i.venda_id
				WHERE v2.usuario_id = v.usuario_id
				AND v2.criado_em::date BETWEEN $1::date AND $2::date), 0)
		FROM vendas v
		LEFT JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY v.usuario_id, u.nome
		ORDER BY 3 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por vendedor: %w", err)
	}
	defer rows.Close()

	result := make([]*report.SalesBySalesperson, 0)
	for rows.Next() {
		var s report.SalesBySalesperson
		if err := rows.Scan(&s.Name, &s.TotalSales, &s.TotalRevenue, &s.AverageTicket, &s.TotalProfit); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas por vendedor: %w", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por vendedor: %w", err)
	}

	return result, nil
}

// SalesByProduct implementa report.Repository.SalesByProduct
func (r *ReportRepository) SalesByProduct(ctx context.Context, p report.Period) ([]*report.SalesByProduct, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT COALESCE(pr.nome, ''), COALESCE(pr.codigo_barras, ''),
			COALESCE(c.nome, ''), COALESCE(SUM(i.quantidade), 0),
			COALESCE(SUM(i.subtotal), 0), COALESCE(SUM(i.lucro), 0)
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		LEFT JOIN produtos pr ON pr.id = i.produto_id
		LEFT JOIN categorias c ON c.id = pr.categoria_id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY pr.nome, pr.codigo_barras, c.nome
		ORDER BY 5 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por produto: %w", err)
	}
	defer rows.Close()

	result := make([]*report.SalesByProduct, 0)
	for rows.Next() {
		var s report.SalesByProduct
		if err := rows.Scan(&s.Name, &s.Barcode, &s.Category, &s.Quantity, &s.TotalRevenue, &s.TotalProfit); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas por produto: %w", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por produto: %w", err)
	}

	return result, nil
}

// SalesByCategory implementa report.Repository.SalesByCategory
func (r *ReportRepository) SalesByCategory(ctx context.Context, p report.Period) ([]*report.SalesByCategory, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT COALESCE(c.nome, 'Sem categoria'), COUNT(DISTINCT i.produto_id),
			COALESCE(SUM(i.quantidade), 0), COALESCE(SUM(i.subtotal), 0),
			COALESCE(SUM(i.lucro), 0)
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		LEFT JOIN produtos pr ON pr.id = i.produto_id
		LEFT JOIN categorias c ON c.id = pr.categoria_id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY c.nome
		ORDER BY 4 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por categoria: %w", err)
	}
	defer rows.Close()

	result := make([]*report.SalesByCategory, 0)
	for rows.Next() {
		var s report.SalesByCategory
		if err := rows.Scan(&s.Category, &s.Products, &s.Quantity, &s.TotalRevenue, &s.TotalProfit); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas por categoria: %w", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por categoria: %w", err)
	}

	return result, nil
}

// ProfitMargins implementa report.Repository.ProfitMargins
func (r *ReportRepository) ProfitMargins(ctx context.Context, p report.Period) ([]*report.ProfitMargin, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT COALESCE(pr.nome, ''), COALESCE(pr.preco, 0),
			COALESCE(pr.custo, 0), COALESCE(SUM(i.quantidade), 0),
			COALESCE(SUM(i.subtotal), 0), COALESCE(SUM(i.lucro), 0)
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		LEFT JOIN produtos pr ON pr.id = i.produto_id
		WHERE v.criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY pr.nome, pr.preco, pr.custo
		ORDER BY 6 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao apurar margens de lucro: %w", err)
	}
	defer rows.Close()

	result := make([]*report.ProfitMargin, 0)
	for rows.Next() {
		var m report.ProfitMargin
		if err := rows.Scan(&m.Name, &m.SalePrice, &m.Cost, &m.Quantity, &m.TotalRevenue, &m.TotalProfit); err != nil {
			return nil, fmt.Errorf("erro ao ler margem de lucro: %w", err)
		}
		if m.TotalRevenue > 0 {
			m.RealMargin = m.TotalProfit / m.TotalRevenue * 100
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao apurar margens de lucro: %w", err)
	}

	return result, nil
}

// DailySales implementa report.Repository.DailySales
func (r *ReportRepository) DailySales(ctx context.Context, p report.Period) ([]*report.DailySales, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT criado_em::date, COUNT(*), COALESCE(SUM(total), 0),
			COALESCE(AVG(total), 0)
		FROM vendas
		WHERE criado_em::date BETWEEN $1::date AND $2::date
		GROUP BY criado_em::date
		ORDER BY 1 DESC`, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas diárias: %w", err)
	}
	defer rows.Close()

	result := make([]*report.DailySales, 0)
	for rows.Next() {
		var d report.DailySales
		if err := rows.Scan(&d.Date, &d.TotalSales, &d.TotalRevenue, &d.AverageTicket); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas diárias: %w", err)
		}
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas diárias: %w", err)
	}

	return result, nil
}

// Stock implementa report.Repository.Stock
func (r *ReportRepository) Stock(ctx context.Context, categoryID string) ([]*report.StockItem, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT p.id, p.nome, p.codigo_barras, p.estoque_atual,
			p.estoque_minimo, p.custo, p.estoque_atual * p.custo,
			COALESCE(c.nome, '')
		FROM produtos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.ativo = true`
	args := []any{}
	if categoryID != "" {
		query += ` AND p.categoria_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY p.nome`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}
	defer rows.Close()

	items := make([]*report.StockItem, 0)
	for rows.Next() {
		var s report.StockItem
		if err := rows.Scan(
			&s.ProductID, &s.Name, &s.Barcode, &s.CurrentStock, &s.MinStock,
			&s.Cost, &s.StockValue, &s.Category); err != nil {
			return nil, fmt.Errorf("erro ao ler item de estoque: %w", err)
		}
		s.Level = stockLevel(s.CurrentStock, s.MinStock)
		items = append(items, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}

	return items, nil
}

// Inventory implementa report.Repository.Inventory
func (r *ReportRepository) Inventory(ctx context.Context, categoryID string) (*report.Inventory, error) {
	items, err := r.Stock(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	inv := &report.Inventory{Products: make([]report.StockItem, 0, len(items))}
	for _, item := range items {
		inv.Products = append(inv.Products, *item)
		inv.Summary.TotalProducts++
		inv.Summary.TotalValue += item.StockValue
		switch item.Level {
		case "sem_estoque":
			inv.Summary.OutOfStock++
		case "baixo":
			inv.Summary.LowStock++
		}
	}

	return inv, nil
}

// ExpiringProducts implementa report.Repository.ExpiringProducts
func (r *ReportRepository) ExpiringProducts(ctx context.Context, days int) ([]*report.ExpiringProduct, error) {
	q := database.QuerierFrom(ctx, r.db)

	if days <= 0 {
		days = 30
	}

	rows, err := q.Query(ctx,
		`SELECT id, nome, codigo_barras, estoque_atual, data_validade
		FROM produtos
		WHERE ativo = true
		AND data_validade IS NOT NULL
		AND data_validade <= CURRENT_DATE + $1::int
		ORDER BY data_validade`, days)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar validades: %w", err)
	}
	defer rows.Close()

	today := time.Now().Truncate(24 * time.Hour)
	result := make([]*report.ExpiringProduct, 0)
	for rows.Next() {
		var e report.ExpiringProduct
		if err := rows.Scan(&e.ProductID, &e.Name, &e.Barcode, &e.CurrentStock, &e.ExpiryDate); err != nil {
			return nil, fmt.Errorf("erro ao ler validade do produto: %w", err)
		}
		e.DaysLeft = int(e.ExpiryDate.Sub(today).Hours() / 24)
		if e.DaysLeft < 0 {
			e.Status = "vencido"
		} else {
			e.Status = "a_vencer"
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao consultar validades: %w", err)
	}

	return result, nil
}

// DelinquentCustomers implementa report.Repository.DelinquentCustomers
func (r *ReportRepository) DelinquentCustomers(ctx context.Context) ([]*report.DelinquentCustomer, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT COALESCE(c.nome, ''), COALESCE(c.email, ''),
			COALESCE(c.telefone, ''), COUNT(*),
			COALESCE(SUM(cr.valor_restante), 0), MIN(cr.data_vencimento)
		FROM contas_receber cr
		JOIN clientes c ON c.id = cr.cliente_id
		WHERE cr.status IN ('pendente', 'parcial')
		AND cr.data_vencimento < NOW()
		GROUP BY c.nome, c.email, c.telefone
		ORDER BY 5 DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes inadimplentes: %w", err)
	}
	defer rows.Close()

	result := make([]*report.DelinquentCustomer, 0)
	for rows.Next() {
		var d report.DelinquentCustomer
		if err := rows.Scan(&d.Name, &d.Email, &d.Phone, &d.OverdueBills, &d.TotalOverdue, &d.OldestDue); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente inadimplente: %w", err)
		}
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes inadimplentes: %w", err)
	}

	return result, nil
}

// stockLevel classifica o nível de estoque de um produto
func stockLevel(current, min int) string {
	switch {
	case current <= 0:
		return "sem_estoque"
	case current <= min:
		return "baixo"
	default:
		return "normal"
	}
}
