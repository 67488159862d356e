package check

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber   = errors.New("número do cheque não pode ser vazio")
	ErrInvalidAmount = errors.New("valor deve ser maior que zero")
)

// CheckType indica se o cheque foi emitido pela loja ou recebido de terceiros
type CheckType string

const (
	TypeIssued   CheckType = "emitido"
	TypeReceived CheckType = "recebido"
)

// Status do cheque
const (
	StatusPending  = "pendente"
	StatusCleared  = "compensado"
	StatusBounced  = "devolvido"
	StatusReturned = "repassado"
)

// Check representa um cheque pré-datado em custódia ou emitido
type Check struct {
	ID         string    `json:"id"`
	Type       CheckType `json:"tipo"`
	Number     string    `json:"numero"`
	Bank       string    `json:"banco"`
	Issuer     string    `json:"emitente"`
	Amount     float64   `json:"valor"`
	GoodFor    time.Time `json:"bom_para"`
	Status     string    `json:"status"`
	CustomerID *string   `json:"cliente_id,omitempty"`
	SupplierID *string   `json:"fornecedor_id,omitempty"`
	Notes      string    `json:"observacoes,omitempty"`
	CreatedAt  time.Time `json:"criado_em"`
}

// NewCheck registra um cheque
func NewCheck(cType CheckType, number, bank, issuer string, amount float64, goodFor time.Time) (*Check, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Check{
		ID:        uuid.New().String(),
		Type:      cType,
		Number:    number,
		Bank:      bank,
		Issuer:    issuer,
		Amount:    amount,
		GoodFor:   goodFor,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}, nil
}
