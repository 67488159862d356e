package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// Category representa uma categoria de produtos
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	Color       string    `json:"cor"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"criado_em"`
}

// NewCategory cria uma nova categoria
func NewCategory(name, description, color string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if color == "" {
		color = "#6B7280"
	}
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Color:       color,
		Active:      true,
		CreatedAt:   time.Now(),
	}, nil
}
