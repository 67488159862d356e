package repository

import (
	"context"
	"fmt"

	"github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

// StockRepository implementa a interface stock.Repository
type StockRepository struct {
	db database.Querier
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db database.Querier) stock.Repository {
	return &StockRepository{
		db: db,
	}
}

// Create implementa stock.Repository.Create
func (r *StockRepository) Create(ctx context.Context, m *stock.Movement) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO movimentacoes_estoque (
			id, produto_id, tipo, quantidade, quantidade_anterior,
			quantidade_atual, motivo, usuario_id, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ProductID, m.Type, m.Quantity, m.PreviousQty, m.CurrentQty,
		m.Reason, m.UserID, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar movimentação de estoque: %w", err)
	}

	return nil
}

// ListByProduct implementa stock.Repository.ListByProduct
func (r *StockRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*stock.Movement, error) {
	q := database.QuerierFrom(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	rows, err := q.Query(ctx,
		`SELECT m.id, m.produto_id, COALESCE(p.nome, ''), m.tipo, m.quantidade,
			m.quantidade_anterior, m.quantidade_atual, m.motivo, m.usuario_id,
			m.criado_em
		FROM movimentacoes_estoque m
		LEFT JOIN produtos p ON p.id = m.produto_id
		WHERE m.produto_id = $1
		ORDER BY m.criado_em DESC
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações de estoque: %w", err)
	}
	defer rows.Close()

	movements := make([]*stock.Movement, 0)
	for rows.Next() {
		var m stock.Movement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
			&m.PreviousQty, &m.CurrentQty, &m.Reason, &m.UserID,
			&m.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler movimentação de estoque: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações de estoque: %w", err)
	}

	return movements, nil
}

// FindDrift implementa stock.Repository.FindDrift: recomputa o estoque de
// cada produto como estoque inicial mais a soma assinada das movimentações e
// devolve apenas os produtos em que o valor em cache divergiu.
func (r *StockRepository) FindDrift(ctx context.Context) ([]*stock.Drift, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT p.id, p.nome, p.estoque_atual,
			p.estoque_inicial + COALESCE(SUM(
				CASE WHEN m.tipo = 'saida' THEN -m.quantidade ELSE m.quantidade END
			), 0) AS calculado
		FROM produtos p
		LEFT JOIN movimentacoes_estoque m ON m.produto_id = p.id
		WHERE p.ativo = true
		GROUP BY p.id, p.nome, p.estoque_atual, p.estoque_inicial
		HAVING p.estoque_atual <> p.estoque_inicial + COALESCE(SUM(
			CASE WHEN m.tipo = 'saida' THEN -m.quantidade ELSE m.quantidade END
		), 0)`)
	if err != nil {
		return nil, fmt.Errorf("erro ao conferir estoque: %w", err)
	}
	defer rows.Close()

	drifts := make([]*stock.Drift, 0)
	for rows.Next() {
		var d stock.Drift
		if err := rows.Scan(&d.ProductID, &d.ProductName, &d.Cached, &d.Computed); err != nil {
			return nil, fmt.Errorf("erro ao ler divergência de estoque: %w", err)
		}
		d.Delta = d.Cached - d.Computed
		drifts = append(drifts, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao conferir estoque: %w", err)
	}

	return drifts, nil
}
