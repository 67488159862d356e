package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/customer"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var (
	ErrCustomerNotFound     = errors.New("cliente não encontrado")
	ErrCustomerDuplicateKey = errors.New("cliente com mesmo CPF já existe")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db database.Querier
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db database.Querier) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `id, nome, email, telefone, cpf, data_nascimento, endereco,
		cidade, estado, cep, limite_credito, bloqueado, observacoes, ativo,
		criado_em, atualizado_em`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO clientes (
			id, nome, email, telefone, cpf, data_nascimento, endereco, cidade,
			estado, cep, limite_credito, bloqueado, observacoes, ativo,
			criado_em, atualizado_em
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`,
		c.ID, c.Name, c.Email, c.Phone, c.CPF, c.BirthDate, c.Address, c.City,
		c.State, c.ZipCode, c.CreditLimit, c.Blocked, c.Notes, c.Active,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCustomerDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, search string) ([]*customer.Customer, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM clientes WHERE ativo = true`
	args := []any{}
	if search != "" {
		query += ` AND (nome ILIKE $1 OR email ILIKE $1 OR cpf LIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY nome`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.CPF, &c.BirthDate,
			&c.Address, &c.City, &c.State, &c.ZipCode, &c.CreditLimit,
			&c.Blocked, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}

	return customers, nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	q := database.QuerierFrom(ctx, r.db)

	var c customer.Customer
	err := q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CPF, &c.BirthDate,
			&c.Address, &c.City, &c.State, &c.ZipCode, &c.CreditLimit,
			&c.Blocked, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}
