package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyEmail = errors.New("email não pode ser vazio")
)

// Role define o papel do usuário no sistema
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSalesman Role = "vendedor"
)

// User representa um operador do sistema
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"nome"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       Role      `json:"tipo"`
	Commission float64   `json:"comissao"`
	Active     bool      `json:"ativo"`
	CreatedAt  time.Time `json:"criado_em"`
	UpdatedAt  time.Time `json:"atualizado_em"`
}

// NewUser cria um novo usuário com a senha armazenada como hash bcrypt
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckPassword verifica se a senha informada confere com o hash armazenado
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
