package stock

import "context"

// Drift descreve a divergência entre o estoque em cache de um produto e o
// valor recomputado a partir do estoque inicial e das movimentações.
type Drift struct {
	ProductID   string `json:"produto_id"`
	ProductName string `json:"produto_nome"`
	Cached      int    `json:"estoque_atual"`
	Computed    int    `json:"estoque_calculado"`
	Delta       int    `json:"divergencia"`
}

// Repository define a interface para o trilho de auditoria de estoque
type Repository interface {
	// Create grava uma movimentação de estoque
	Create(ctx context.Context, m *Movement) error

	// ListByProduct lista as movimentações de um produto, mais recentes primeiro
	ListByProduct(ctx context.Context, productID string, limit int) ([]*Movement, error)

	// FindDrift recomputa o estoque de cada produto a partir do estoque
	// inicial e da soma assinada das movimentações, e retorna os produtos
	// cujo valor em cache divergiu
	FindDrift(ctx context.Context) ([]*Drift, error)
}
