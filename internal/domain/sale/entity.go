package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUser  = errors.New("usuário da venda é obrigatório")
	ErrEmptyItems = errors.New("venda deve ter pelo menos um item")
)

// Status da venda. Texto livre no banco; "concluida" é o padrão.
const StatusCompleted = "concluida"

// Sale representa uma venda concluída no PDV
type Sale struct {
	ID            string    `json:"id"`
	Number        string    `json:"numero_venda"`
	CustomerID    *string   `json:"cliente_id,omitempty"`
	CustomerName  string    `json:"cliente_nome,omitempty"`
	UserID        string    `json:"usuario_id"`
	UserName      string    `json:"usuario_nome,omitempty"`
	Subtotal      float64   `json:"subtotal"`
	Discount      float64   `json:"desconto"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"forma_pagamento"`
	Status        string    `json:"status"`
	Notes         string    `json:"observacoes,omitempty"`
	Items         []Item    `json:"itens,omitempty"`
	CreatedAt     time.Time `json:"criado_em"`
}

// Item representa um item da venda. O custo unitário é capturado do produto
// no momento da venda; o lucro é calculado sobre esse valor histórico.
type Item struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"venda_id"`
	ProductID   string  `json:"produto_id"`
	ProductName string  `json:"produto_nome,omitempty"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"preco_unitario"`
	UnitCost    float64 `json:"custo_unitario"`
	Subtotal    float64 `json:"subtotal"`
	Profit      float64 `json:"lucro"`
}

// NewSale monta a venda a partir das linhas do carrinho. O subtotal é a soma
// das linhas e o total é subtotal menos desconto.
func NewSale(customerID *string, userID string, discount float64, paymentMethod, notes string) (*Sale, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	return &Sale{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		UserID:        userID,
		Discount:      discount,
		PaymentMethod: paymentMethod,
		Status:        StatusCompleted,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}, nil
}

// AddItem adiciona uma linha à venda e recalcula subtotal e total
func (s *Sale) AddItem(productID string, quantity int, unitPrice, unitCost float64) {
	lineSubtotal := unitPrice * float64(quantity)
	s.Items = append(s.Items, Item{
		ID:        uuid.New().String(),
		SaleID:    s.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
		Subtotal:  lineSubtotal,
		Profit:    (unitPrice - unitCost) * float64(quantity),
	})
	s.Subtotal += lineSubtotal
	s.Total = s.Subtotal - s.Discount
}
