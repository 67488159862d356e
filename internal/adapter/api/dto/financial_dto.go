package dto

import "time"

// PayableRequest representa os dados para criação de uma conta a pagar
type PayableRequest struct {
	SupplierID  *string   `json:"fornecedor_id"`
	Description string    `json:"descricao" binding:"required"`
	Category    string    `json:"categoria"`
	Amount      float64   `json:"valor_original" binding:"required,gt=0"`
	DueDate     time.Time `json:"data_vencimento" binding:"required"`
	Document    string    `json:"documento"`
	Notes       string    `json:"observacoes"`
	UserID      string    `json:"usuario_id" binding:"required"`
}

// ReceivableRequest representa os dados para criação de uma conta a receber
type ReceivableRequest struct {
	CustomerID  *string   `json:"cliente_id"`
	SaleID      *string   `json:"venda_id"`
	Description string    `json:"descricao" binding:"required"`
	Amount      float64   `json:"valor_original" binding:"required,gt=0"`
	DueDate     time.Time `json:"data_vencimento" binding:"required"`
	Document    string    `json:"documento"`
	Notes       string    `json:"observacoes"`
	UserID      string    `json:"usuario_id" binding:"required"`
}

// SettlementRequest representa a liquidação parcial ou total de um título
type SettlementRequest struct {
	Amount        float64 `json:"valor" binding:"required,gt=0"`
	PaymentMethod string  `json:"forma_pagamento"`
	BankAccountID string  `json:"conta_id"`
	UserID        string  `json:"usuario_id" binding:"required"`
}

// ExpenseRequest representa os dados para registro de uma despesa
type ExpenseRequest struct {
	Description   string    `json:"descricao" binding:"required"`
	Category      string    `json:"categoria"`
	Amount        float64   `json:"valor" binding:"required,gt=0"`
	Date          time.Time `json:"data_despesa" binding:"required"`
	BankAccountID *string   `json:"conta_id"`
	Notes         string    `json:"observacoes"`
	UserID        string    `json:"usuario_id" binding:"required"`
}

// AccountRequest representa os dados para criação de uma conta bancária
type AccountRequest struct {
	Name           string  `json:"nome" binding:"required"`
	Type           string  `json:"tipo"`
	Bank           string  `json:"banco"`
	Agency         string  `json:"agencia"`
	Number         string  `json:"conta"`
	OpeningBalance float64 `json:"saldo_inicial"`
}

// CheckRequest representa os dados para registro de um cheque
type CheckRequest struct {
	Type       string    `json:"tipo" binding:"required"`
	Number     string    `json:"numero" binding:"required"`
	Bank       string    `json:"banco"`
	Issuer     string    `json:"emitente"`
	Amount     float64   `json:"valor" binding:"required,gt=0"`
	GoodFor    time.Time `json:"bom_para" binding:"required"`
	CustomerID *string   `json:"cliente_id"`
	SupplierID *string   `json:"fornecedor_id"`
	Notes      string    `json:"observacoes"`
}

// CheckStatusRequest representa a mudança de status de um cheque
type CheckStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
