package payable

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrAlreadyPaid      = errors.New("conta já foi paga")
)

// Status da conta a pagar. "vencida" nunca é persistida: é uma classificação
// derivada nas consultas (vencimento no passado com status pendente/parcial).
const (
	StatusPending   = "pendente"
	StatusPaid      = "pago"
	StatusPartial   = "parcial"
	StatusCancelled = "cancelado"
)

// Payable representa uma conta a pagar a um fornecedor
type Payable struct {
	ID              string     `json:"id"`
	SupplierID      *string    `json:"fornecedor_id,omitempty"`
	SupplierName    string     `json:"fornecedor_nome,omitempty"`
	Description     string     `json:"descricao"`
	Category        string     `json:"categoria"`
	OriginalAmount  float64    `json:"valor_original"`
	PaidAmount      float64    `json:"valor_pago"`
	RemainingAmount float64    `json:"valor_restante"`
	DueDate         time.Time  `json:"data_vencimento"`
	PaymentDate     *time.Time `json:"data_pagamento,omitempty"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"forma_pagamento,omitempty"`
	BankAccountID   *string    `json:"conta_id,omitempty"`
	Document        string     `json:"documento,omitempty"`
	Notes           string     `json:"observacoes,omitempty"`
	UserID          string     `json:"usuario_id"`
	CreatedAt       time.Time  `json:"criado_em"`
}

// NewPayable cria uma conta a pagar com o valor restante igual ao original
func NewPayable(supplierID *string, description, category string, amount float64, dueDate time.Time, userID string) (*Payable, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payable{
		ID:              uuid.New().String(),
		SupplierID:      supplierID,
		Description:     description,
		Category:        category,
		OriginalAmount:  amount,
		RemainingAmount: amount,
		DueDate:         dueDate,
		Status:          StatusPending,
		UserID:          userID,
		CreatedAt:       time.Now(),
	}, nil
}

// ApplyPayment aplica um pagamento parcial ou total. O valor restante pode
// ficar negativo quando o pagamento excede o devido; o status resolve para
// pago da mesma forma (comportamento observado do sistema, não validado).
func (p *Payable) ApplyPayment(amount float64, method, bankAccountID string, when time.Time) error {
	if p.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	p.PaidAmount += amount
	p.RemainingAmount = p.OriginalAmount - p.PaidAmount
	if p.RemainingAmount <= 0 {
		p.Status = StatusPaid
	} else {
		p.Status = StatusPartial
	}
	p.PaymentDate = &when
	p.PaymentMethod = method
	p.BankAccountID = &bankAccountID
	return nil
}
