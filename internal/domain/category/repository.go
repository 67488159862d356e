package category

import "context"

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// List lista as categorias ativas ordenadas por nome
	List(ctx context.Context) ([]*Category, error)

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)
}
