package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/expense"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db database.Querier
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db database.Querier) expense.Repository {
	return &ExpenseRepository{
		db: db,
	}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO despesas (
			id, descricao, categoria, valor, data_despesa, conta_id,
			observacoes, usuario_id, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Description, e.Category, e.Amount, e.Date, e.BankAccountID,
		e.Notes, e.UserID, e.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar despesa: %w", err)
	}

	return nil
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context, start, end *time.Time) ([]*expense.Expense, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT id, descricao, categoria, valor, data_despesa, conta_id,
			observacoes, usuario_id, criado_em
		FROM despesas WHERE 1=1`
	args := []any{}
	idx := 1

	if start != nil {
		query += fmt.Sprintf(" AND data_despesa >= $%d", idx)
		args = append(args, *start)
		idx++
	}
	if end != nil {
		query += fmt.Sprintf(" AND data_despesa <= $%d", idx)
		args = append(args, *end)
		idx++
	}
	query += ` ORDER BY data_despesa DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.Description, &e.Category, &e.Amount, &e.Date,
			&e.BankAccountID, &e.Notes, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		expenses = append(expenses, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}

	return expenses, nil
}
