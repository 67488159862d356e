package dto

import "time"

// ProductRequest representa os dados para criação ou atualização de um produto
type ProductRequest struct {
	Name        string     `json:"nome" binding:"required"`
	Description string     `json:"descricao"`
	Barcode     string     `json:"codigo_barras"`
	Reference   string     `json:"referencia"`
	Price       float64    `json:"preco" binding:"required,gt=0"`
	Cost        float64    `json:"custo"`
	Stock       int        `json:"estoque_atual"`
	MinStock    int        `json:"estoque_minimo"`
	ExpiryDate  *time.Time `json:"data_validade"`
	CategoryID  *string    `json:"categoria_id"`
	SupplierID  *string    `json:"fornecedor_id"`
	Image       string     `json:"imagem"`
}

// StockAdjustRequest representa um ajuste manual de estoque. Quantidade é o
// delta assinado: positivo para entrada, negativo para saída.
type StockAdjustRequest struct {
	Quantity int    `json:"quantidade" binding:"required"`
	Reason   string `json:"motivo"`
	UserID   string `json:"usuario_id" binding:"required"`
}
