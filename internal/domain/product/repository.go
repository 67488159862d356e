package product

import (
	"context"
)

// Filter define os filtros de listagem de produtos
type Filter struct {
	CategoryID string
	Search     string
	Code       string
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete desativa um produto (remoção lógica)
	Delete(ctx context.Context, id string) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras ou referência
	FindByBarcode(ctx context.Context, code string) (*Product, error)

	// List lista os produtos ativos aplicando os filtros informados
	List(ctx context.Context, f Filter) ([]*Product, error)

	// ListLowStock lista os produtos com estoque no mínimo ou abaixo
	ListLowStock(ctx context.Context) ([]*Product, error)

	// GetCost retorna o custo atual do produto; 0 se o produto não existir
	GetCost(ctx context.Context, id string) (float64, error)

	// GetStock retorna o estoque atual do produto
	GetStock(ctx context.Context, id string) (int, error)

	// SetStock grava o novo valor de estoque do produto
	SetStock(ctx context.Context, id string, stock int) error
}
