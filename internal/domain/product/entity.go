package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrInvalidPrice = errors.New("preço deve ser maior que zero")
)

// Product representa um produto do catálogo
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"nome"`
	Description  string     `json:"descricao"`
	Barcode      string     `json:"codigo_barras"`
	Reference    string     `json:"referencia"`
	Price        float64    `json:"preco"`
	Cost         float64    `json:"custo"`
	ProfitMargin float64    `json:"margem_lucro"`
	InitialStock int        `json:"estoque_inicial"`
	CurrentStock int        `json:"estoque_atual"`
	MinStock     int        `json:"estoque_minimo"`
	ExpiryDate   *time.Time `json:"data_validade,omitempty"`
	CategoryID   *string    `json:"categoria_id,omitempty"`
	SupplierID   *string    `json:"fornecedor_id,omitempty"`
	Image        string     `json:"imagem,omitempty"`
	Active       bool       `json:"ativo"`
	CreatedAt    time.Time  `json:"criado_em"`
	UpdatedAt    time.Time  `json:"atualizado_em"`
}

// NewProduct cria um novo produto com a margem de lucro calculada a partir do custo
func NewProduct(name string, price, cost float64, initialStock, minStock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:           uuid.New().String(),
		Name:         name,
		Price:        price,
		Cost:         cost,
		ProfitMargin: calculateMargin(price, cost),
		InitialStock: initialStock,
		CurrentStock: initialStock,
		MinStock:     minStock,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// LowStock informa se o estoque atual está no limite mínimo ou abaixo dele
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinStock
}

func calculateMargin(price, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return (price - cost) / cost * 100
}
