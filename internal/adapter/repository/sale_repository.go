package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var ErrSaleNotFound = errors.New("venda não encontrada")

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db database.Querier
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db database.Querier) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create: insere o cabeçalho e todos os
// itens. Deve rodar dentro da transação da operação de venda.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO vendas (
			id, numero_venda, cliente_id, usuario_id, subtotal, desconto,
			total, forma_pagamento, status, observacoes, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Number, s.CustomerID, s.UserID, s.Subtotal, s.Discount,
		s.Total, s.PaymentMethod, s.Status, s.Notes, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	for _, item := range s.Items {
		_, err := q.Exec(ctx,
			`INSERT INTO itens_venda (
				id, venda_id, produto_id, quantidade, preco_unitario,
				custo_unitario, subtotal, lucro
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.SaleID, item.ProductID, item.Quantity,
			item.UnitPrice, item.UnitCost, item.Subtotal, item.Profit)
		if err != nil {
			return fmt.Errorf("erro ao criar item da venda: %w", err)
		}
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	q := database.QuerierFrom(ctx, r.db)

	var s sale.Sale
	var customerName *string
	err := q.QueryRow(ctx,
		`SELECT v.id, v.numero_venda, v.cliente_id, c.nome, v.usuario_id,
			COALESCE(u.nome, ''), v.subtotal, v.desconto, v.total,
			v.forma_pagamento, v.status, v.observacoes, v.criado_em
		FROM vendas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		LEFT JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.id = $1`, id).
		Scan(&s.ID, &s.Number, &s.CustomerID, &customerName, &s.UserID,
			&s.UserName, &s.Subtotal, &s.Discount, &s.Total,
			&s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	if customerName != nil {
		s.CustomerName = *customerName
	}

	rows, err := q.Query(ctx,
		`SELECT i.id, i.venda_id, i.produto_id, COALESCE(p.nome, ''),
			i.quantidade, i.preco_unitario, i.custo_unitario, i.subtotal, i.lucro
		FROM itens_venda i
		LEFT JOIN produtos p ON p.id = i.produto_id
		WHERE i.venda_id = $1
		ORDER BY p.nome`, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item sale.Item
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.UnitCost, &item.Subtotal,
			&item.Profit); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}

	return &s, nil
}

// List implementa sale.Repository.List. Retorna cabeçalhos sem itens.
func (r *SaleRepository) List(ctx context.Context, f sale.Filter) ([]*sale.Sale, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT v.id, v.numero_venda, v.cliente_id, c.nome, v.usuario_id,
			COALESCE(u.nome, ''), v.subtotal, v.desconto, v.total,
			v.forma_pagamento, v.status, v.observacoes, v.criado_em
		FROM vendas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		LEFT JOIN usuarios u ON u.id = v.usuario_id
		WHERE 1=1`
	args := []any{}
	idx := 1

	if f.StartDate != nil {
		query += fmt.Sprintf(" AND v.criado_em >= $%d", idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND v.criado_em <= $%d", idx)
		args = append(args, *f.EndDate)
		idx++
	}
	if f.CustomerID != "" {
		query += fmt.Sprintf(" AND v.cliente_id = $%d", idx)
		args = append(args, f.CustomerID)
		idx++
	}
	if f.UserID != "" {
		query += fmt.Sprintf(" AND v.usuario_id = $%d", idx)
		args = append(args, f.UserID)
		idx++
	}
	query += " ORDER BY v.criado_em DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		var customerName *string
		if err := rows.Scan(
			&s.ID, &s.Number, &s.CustomerID, &customerName, &s.UserID,
			&s.UserName, &s.Subtotal, &s.Discount, &s.Total,
			&s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		if customerName != nil {
			s.CustomerName = *customerName
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	return sales, nil
}

// NextNumber implementa sale.Repository.NextNumber. A sequência de cada dia
// vive em uma linha de sequencias_venda; o upsert incrementa e devolve o
// sequencial em uma única instrução, então duas vendas simultâneas nunca
// recebem o mesmo número.
func (r *SaleRepository) NextNumber(ctx context.Context, day time.Time) (string, error) {
	q := database.QuerierFrom(ctx, r.db)

	var seq int
	err := q.QueryRow(ctx,
		`INSERT INTO sequencias_venda (data, ultimo_sequencial)
		VALUES ($1, 1)
		ON CONFLICT (data)
		DO UPDATE SET ultimo_sequencial = sequencias_venda.ultimo_sequencial + 1
		RETURNING ultimo_sequencial`,
		day.Format("2006-01-02")).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("erro ao reservar número da venda: %w", err)
	}

	return fmt.Sprintf("%s%04d", day.Format("20060102"), seq), nil
}
