package customer

import "context"

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// List lista os clientes ativos; search filtra por nome, email ou CPF
	List(ctx context.Context, search string) ([]*Customer, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)
}
