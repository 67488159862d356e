package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// Customer representa um cliente
type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"nome"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefone"`
	CPF         string     `json:"cpf"`
	BirthDate   *time.Time `json:"data_nascimento,omitempty"`
	Address     string     `json:"endereco"`
	City        string     `json:"cidade"`
	State       string     `json:"estado"`
	ZipCode     string     `json:"cep"`
	CreditLimit float64    `json:"limite_credito"`
	Blocked     bool       `json:"bloqueado"`
	Notes       string     `json:"observacoes"`
	Active      bool       `json:"ativo"`
	CreatedAt   time.Time  `json:"criado_em"`
	UpdatedAt   time.Time  `json:"atualizado_em"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, email, phone, cpf string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CPF:       cpf,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
