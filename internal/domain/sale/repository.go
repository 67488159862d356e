package sale

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de vendas
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID string
	UserID     string
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create insere a venda e todos os seus itens
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda com seus itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista vendas aplicando os filtros informados
	List(ctx context.Context, f Filter) ([]*Sale, error)

	// NextNumber reserva o próximo número de venda do dia. O número tem o
	// formato AAAAMMDD + sequencial de 4 dígitos; a sequência diária é
	// mantida em uma linha própria atualizada atomicamente.
	NextNumber(ctx context.Context, day time.Time) (string, error)
}
