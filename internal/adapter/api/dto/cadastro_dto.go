package dto

import "time"

// CategoryRequest representa os dados para criação de uma categoria
type CategoryRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Color       string `json:"cor"`
}

// SupplierRequest representa os dados para criação de um fornecedor
type SupplierRequest struct {
	Name      string `json:"nome" binding:"required"`
	LegalName string `json:"razao_social"`
	CNPJ      string `json:"cnpj"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Address   string `json:"endereco"`
	City      string `json:"cidade"`
	State     string `json:"estado"`
	ZipCode   string `json:"cep"`
	Contact   string `json:"contato"`
	Notes     string `json:"observacoes"`
}

// CustomerRequest representa os dados para criação de um cliente
type CustomerRequest struct {
	Name        string     `json:"nome" binding:"required"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefone"`
	CPF         string     `json:"cpf"`
	BirthDate   *time.Time `json:"data_nascimento"`
	Address     string     `json:"endereco"`
	City        string     `json:"cidade"`
	State       string     `json:"estado"`
	ZipCode     string     `json:"cep"`
	CreditLimit float64    `json:"limite_credito"`
	Notes       string     `json:"observacoes"`
}

// UserRequest representa os dados para criação de um usuário
type UserRequest struct {
	Name       string  `json:"nome" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"senha" binding:"required,min=4"`
	Role       string  `json:"tipo"`
	Commission float64 `json:"comissao"`
}
