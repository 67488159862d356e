package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemapdv/sistema-pdv/internal/domain/check"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var ErrCheckNotFound = errors.New("cheque não encontrado")

// CheckRepository implementa a interface check.Repository
type CheckRepository struct {
	db database.Querier
}

// NewCheckRepository cria uma nova instância de CheckRepository
func NewCheckRepository(db database.Querier) check.Repository {
	return &CheckRepository{
		db: db,
	}
}

// Create implementa check.Repository.Create
func (r *CheckRepository) Create(ctx context.Context, c *check.Check) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO cheques (
			id, tipo, numero, banco, emitente, valor, bom_para, status,
			cliente_id, fornecedor_id, observacoes, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Type, c.Number, c.Bank, c.Issuer, c.Amount, c.GoodFor,
		c.Status, c.CustomerID, c.SupplierID, c.Notes, c.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar cheque: %w", err)
	}

	return nil
}

// List implementa check.Repository.List
func (r *CheckRepository) List(ctx context.Context, status string) ([]*check.Check, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT id, tipo, numero, banco, emitente, valor, bom_para,
			status, cliente_id, fornecedor_id, observacoes, criado_em
		FROM cheques`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY bom_para`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cheques: %w", err)
	}
	defer rows.Close()

	checks := make([]*check.Check, 0)
	for rows.Next() {
		var c check.Check
		if err := rows.Scan(
			&c.ID, &c.Type, &c.Number, &c.Bank, &c.Issuer, &c.Amount,
			&c.GoodFor, &c.Status, &c.CustomerID, &c.SupplierID, &c.Notes,
			&c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cheque: %w", err)
		}
		checks = append(checks, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar cheques: %w", err)
	}

	return checks, nil
}

// UpdateStatus implementa check.Repository.UpdateStatus
func (r *CheckRepository) UpdateStatus(ctx context.Context, id, status string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE cheques SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do cheque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCheckNotFound
	}

	return nil
}
