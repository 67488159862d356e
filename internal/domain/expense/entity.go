package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
)

// Expense representa uma despesa avulsa, agrupada por categoria no DRE
type Expense struct {
	ID            string    `json:"id"`
	Description   string    `json:"descricao"`
	Category      string    `json:"categoria"`
	Amount        float64   `json:"valor"`
	Date          time.Time `json:"data_despesa"`
	BankAccountID *string   `json:"conta_id,omitempty"`
	Notes         string    `json:"observacoes,omitempty"`
	UserID        string    `json:"usuario_id"`
	CreatedAt     time.Time `json:"criado_em"`
}

// NewExpense cria uma nova despesa
func NewExpense(description, category string, amount float64, date time.Time, userID string) (*Expense, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Expense{
		ID:          uuid.New().String(),
		Description: description,
		Category:    category,
		Amount:      amount,
		Date:        date,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}, nil
}
