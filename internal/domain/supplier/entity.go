package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// Supplier representa um fornecedor
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	LegalName string    `json:"razao_social"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Address   string    `json:"endereco"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	ZipCode   string    `json:"cep"`
	Contact   string    `json:"contato"`
	Notes     string    `json:"observacoes"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, legalName, cnpj string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		LegalName: legalName,
		CNPJ:      cnpj,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
