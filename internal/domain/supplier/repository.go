package supplier

import "context"

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// List lista os fornecedores ativos; search filtra por nome, razão social ou CNPJ
	List(ctx context.Context, search string) ([]*Supplier, error)

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)
}
