package receivable

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de contas a receber
type Filter struct {
	Status     string
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Repository define a interface para operações de repositório de contas a receber
type Repository interface {
	// Create cria uma nova conta a receber
	Create(ctx context.Context, r *Receivable) error

	// FindByID busca uma conta a receber pelo ID
	FindByID(ctx context.Context, id string) (*Receivable, error)

	// List lista contas a receber aplicando os filtros informados
	List(ctx context.Context, f Filter) ([]*Receivable, error)

	// UpdateSettlement grava o resultado de um recebimento: valores, status,
	// data, forma de pagamento e conta de liquidação
	UpdateSettlement(ctx context.Context, r *Receivable) error
}
