package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/payable"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var ErrPayableNotFound = errors.New("conta a pagar não encontrada")

// PayableRepository implementa a interface payable.Repository
type PayableRepository struct {
	db database.Querier
}

// NewPayableRepository cria uma nova instância de PayableRepository
func NewPayableRepository(db database.Querier) payable.Repository {
	return &PayableRepository{
		db: db,
	}
}

const payableColumns = `cp.id, cp.fornecedor_id, COALESCE(f.nome, ''), cp.descricao,
		cp.categoria, cp.valor_original, cp.valor_pago, cp.valor_restante,
		cp.data_vencimento, cp.data_pagamento, cp.status, cp.forma_pagamento,
		cp.conta_id, cp.documento, cp.observacoes, cp.usuario_id, cp.criado_em`

// Create implementa payable.Repository.Create
func (r *PayableRepository) Create(ctx context.Context, p *payable.Payable) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO contas_pagar (
			id, fornecedor_id, descricao, categoria, valor_original,
			valor_pago, valor_restante, data_vencimento, status, documento,
			observacoes, usuario_id, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.SupplierID, p.Description, p.Category, p.OriginalAmount,
		p.PaidAmount, p.RemainingAmount, p.DueDate, p.Status, p.Document,
		p.Notes, p.UserID, p.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar conta a pagar: %w", err)
	}

	return nil
}

// FindByID implementa payable.Repository.FindByID
func (r *PayableRepository) FindByID(ctx context.Context, id string) (*payable.Payable, error) {
	q := database.QuerierFrom(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+payableColumns+`
		FROM contas_pagar cp
		LEFT JOIN fornecedores f ON f.id = cp.fornecedor_id
		WHERE cp.id = $1`, id)

	p, err := scanPayable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPayableNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta a pagar: %w", err)
	}

	return p, nil
}

// List implementa payable.Repository.List. O status "vencida" é derivado:
// títulos pendentes ou parciais com vencimento no passado.
func (r *PayableRepository) List(ctx context.Context, f payable.Filter) ([]*payable.Payable, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + payableColumns + `
		FROM contas_pagar cp
		LEFT JOIN fornecedores f ON f.id = cp.fornecedor_id
		WHERE 1=1`
	args := []any{}
	idx := 1

	switch f.Status {
	case "":
	case "vencida":
		query += ` AND cp.status IN ('pendente', 'parcial') AND cp.data_vencimento < NOW()`
	default:
		query += fmt.Sprintf(" AND cp.status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND cp.data_vencimento >= $%d", idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND cp.data_vencimento <= $%d", idx)
		args = append(args, *f.EndDate)
		idx++
	}
	query += ` ORDER BY cp.data_vencimento`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas a pagar: %w", err)
	}
	defer rows.Close()

	payables := make([]*payable.Payable, 0)
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta a pagar: %w", err)
		}
		payables = append(payables, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar contas a pagar: %w", err)
	}

	return payables, nil
}

// UpdateSettlement implementa payable.Repository.UpdateSettlement
func (r *PayableRepository) UpdateSettlement(ctx context.Context, p *payable.Payable) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE contas_pagar SET
			valor_pago = $2, valor_restante = $3, status = $4,
			data_pagamento = $5, forma_pagamento = $6, conta_id = $7
		WHERE id = $1`,
		p.ID, p.PaidAmount, p.RemainingAmount, p.Status, p.PaymentDate,
		p.PaymentMethod, p.BankAccountID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta a pagar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPayableNotFound
	}

	return nil
}

func scanPayable(row pgx.Row) (*payable.Payable, error) {
	var p payable.Payable
	err := row.Scan(
		&p.ID, &p.SupplierID, &p.SupplierName, &p.Description, &p.Category,
		&p.OriginalAmount, &p.PaidAmount, &p.RemainingAmount, &p.DueDate,
		&p.PaymentDate, &p.Status, &p.PaymentMethod, &p.BankAccountID,
		&p.Document, &p.Notes, &p.UserID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
