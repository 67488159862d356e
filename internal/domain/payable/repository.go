package payable

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de contas a pagar
type Filter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository define a interface para operações de repositório de contas a pagar
type Repository interface {
	// Create cria uma nova conta a pagar
	Create(ctx context.Context, p *Payable) error

	// FindByID busca uma conta a pagar pelo ID
	FindByID(ctx context.Context, id string) (*Payable, error)

	// List lista contas a pagar aplicando os filtros informados
	List(ctx context.Context, f Filter) ([]*Payable, error)

	// UpdateSettlement grava o resultado de um pagamento: valores, status,
	// data, forma de pagamento e conta de liquidação
	UpdateSettlement(ctx context.Context, p *Payable) error
}
