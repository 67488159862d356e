package receivable

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrAlreadyReceived  = errors.New("conta já foi recebida")
)

// Status da conta a receber; "vencida" é derivada nas consultas
const (
	StatusPending   = "pendente"
	StatusReceived  = "recebido"
	StatusPartial   = "parcial"
	StatusCancelled = "cancelado"
)

// Receivable representa uma conta a receber de um cliente
type Receivable struct {
	ID              string     `json:"id"`
	CustomerID      *string    `json:"cliente_id,omitempty"`
	CustomerName    string     `json:"cliente_nome,omitempty"`
	SaleID          *string    `json:"venda_id,omitempty"`
	Description     string     `json:"descricao"`
	OriginalAmount  float64    `json:"valor_original"`
	ReceivedAmount  float64    `json:"valor_recebido"`
	RemainingAmount float64    `json:"valor_restante"`
	DueDate         time.Time  `json:"data_vencimento"`
	ReceiptDate     *time.Time `json:"data_recebimento,omitempty"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"forma_pagamento,omitempty"`
	BankAccountID   *string    `json:"conta_id,omitempty"`
	Document        string     `json:"documento,omitempty"`
	Notes           string     `json:"observacoes,omitempty"`
	UserID          string     `json:"usuario_id"`
	CreatedAt       time.Time  `json:"criado_em"`
}

// NewReceivable cria uma conta a receber com o valor restante igual ao original
func NewReceivable(customerID, saleID *string, description string, amount float64, dueDate time.Time, userID string) (*Receivable, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Receivable{
		ID:              uuid.New().String(),
		CustomerID:      customerID,
		SaleID:          saleID,
		Description:     description,
		OriginalAmount:  amount,
		RemainingAmount: amount,
		DueDate:         dueDate,
		Status:          StatusPending,
		UserID:          userID,
		CreatedAt:       time.Now(),
	}, nil
}

// ApplyReceipt aplica um recebimento parcial ou total. Como no pagamento,
// valores acima do restante não são rejeitados.
func (r *Receivable) ApplyReceipt(amount float64, method, bankAccountID string, when time.Time) error {
	if r.Status == StatusReceived {
		return ErrAlreadyReceived
	}

	r.ReceivedAmount += amount
	r.RemainingAmount = r.OriginalAmount - r.ReceivedAmount
	if r.RemainingAmount <= 0 {
		r.Status = StatusReceived
	} else {
		r.Status = StatusPartial
	}
	r.ReceiptDate = &when
	r.PaymentMethod = method
	r.BankAccountID = &bankAccountID
	return nil
}
