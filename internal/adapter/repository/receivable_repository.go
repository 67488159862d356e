package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var ErrReceivableNotFound = errors.New("conta a receber não encontrada")

// ReceivableRepository implementa a interface receivable.Repository
type ReceivableRepository struct {
	db database.Querier
}

// NewReceivableRepository cria uma nova instância de ReceivableRepository
func NewReceivableRepository(db database.Querier) receivable.Repository {
	return &ReceivableRepository{
		db: db,
	}
}

const receivableColumns = `cr.id, cr.cliente_id, COALESCE(c.nome, ''), cr.venda_id,
		cr.descricao, cr.valor_original, cr.valor_recebido, cr.valor_restante,
		cr.data_vencimento, cr.data_recebimento, cr.status, cr.forma_pagamento,
		cr.conta_id, cr.documento, cr.observacoes, cr.usuario_id, cr.criado_em`

// Create implementa receivable.Repository.Create
func (r *ReceivableRepository) Create(ctx context.Context, rec *receivable.Receivable) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO contas_receber (
			id, cliente_id, venda_id, descricao, valor_original,
			valor_recebido, valor_restante, data_vencimento, status,
			documento, observacoes, usuario_id, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.CustomerID, rec.SaleID, rec.Description,
		rec.OriginalAmount, rec.ReceivedAmount, rec.RemainingAmount,
		rec.DueDate, rec.Status, rec.Document, rec.Notes, rec.UserID,
		rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar conta a receber: %w", err)
	}

	return nil
}

// FindByID implementa receivable.Repository.FindByID
func (r *ReceivableRepository) FindByID(ctx context.Context, id string) (*receivable.Receivable, error) {
	q := database.QuerierFrom(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+receivableColumns+`
		FROM contas_receber cr
		LEFT JOIN clientes c ON c.id = cr.cliente_id
		WHERE cr.id = $1`, id)

	rec, err := scanReceivable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReceivableNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta a receber: %w", err)
	}

	return rec, nil
}

// List implementa receivable.Repository.List; "vencida" é status derivado
func (r *ReceivableRepository) List(ctx context.Context, f receivable.Filter) ([]*receivable.Receivable, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + receivableColumns + `
		FROM contas_receber cr
		LEFT JOIN clientes c ON c.id = cr.cliente_id
		WHERE 1=1`
	args := []any{}
	idx := 1

	switch f.Status {
	case "":
	case "vencida":
		query += ` AND cr.status IN ('pendente', 'parcial') AND cr.data_vencimento < NOW()`
	default:
		query += fmt.Sprintf(" AND cr.status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	if f.CustomerID != "" {
		query += fmt.Sprintf(" AND cr.cliente_id = $%d", idx)
		args = append(args, f.CustomerID)
		idx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND cr.data_vencimento >= $%d", idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND cr.data_vencimento <= $%d", idx)
		args = append(args, *f.EndDate)
		idx++
	}
	query += ` ORDER BY cr.data_vencimento`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas a receber: %w", err)
	}
	defer rows.Close()

	receivables := make([]*receivable.Receivable, 0)
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta a receber: %w", err)
		}
		receivables = append(receivables, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar contas a receber: %w", err)
	}

	return receivables, nil
}

// UpdateSettlement implementa receivable.Repository.UpdateSettlement
func (r *ReceivableRepository) UpdateSettlement(ctx context.Context, rec *receivable.Receivable) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE contas_receber SET
			valor_recebido = $2, valor_restante = $3, status = $4,
			data_recebimento = $5, forma_pagamento = $6, conta_id = $7
		WHERE id = $1`,
		rec.ID, rec.ReceivedAmount, rec.RemainingAmount, rec.Status,
		rec.ReceiptDate, rec.PaymentMethod, rec.BankAccountID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta a receber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReceivableNotFound
	}

	return nil
}

func scanReceivable(row pgx.Row) (*receivable.Receivable, error) {
	var rec receivable.Receivable
	err := row.Scan(
		&rec.ID, &rec.CustomerID, &rec.CustomerName, &rec.SaleID,
		&rec.Description, &rec.OriginalAmount, &rec.ReceivedAmount,
		&rec.RemainingAmount, &rec.DueDate, &rec.ReceiptDate, &rec.Status,
		&rec.PaymentMethod, &rec.BankAccountID, &rec.Document, &rec.Notes,
		&rec.UserID, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
