package dto

// SaleRequest representa o carrinho enviado pelo PDV para fechar uma venda
type SaleRequest struct {
	CustomerID    *string           `json:"cliente_id"`
	UserID        string            `json:"usuario_id" binding:"required"`
	Discount      float64           `json:"desconto"`
	PaymentMethod string            `json:"forma_pagamento" binding:"required"`
	Notes         string            `json:"observacoes"`
	Items         []SaleItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// SaleItemRequest é uma linha do carrinho
type SaleItemRequest struct {
	ProductID string  `json:"produto_id" binding:"required"`
	Quantity  int     `json:"quantidade" binding:"required,gt=0"`
	UnitPrice float64 `json:"preco_unitario" binding:"required,gt=0"`
}
