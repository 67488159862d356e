package expense

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	// Create cria uma nova despesa
	Create(ctx context.Context, e *Expense) error

	// List lista despesas do período informado
	List(ctx context.Context, start, end *time.Time) ([]*Expense, error)
}
