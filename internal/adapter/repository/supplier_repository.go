package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/supplier"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var (
	ErrSupplierNotFound     = errors.New("fornecedor não encontrado")
	ErrSupplierDuplicateKey = errors.New("fornecedor com mesmo CNPJ já existe")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db database.Querier
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db database.Querier) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierColumns = `id, nome, razao_social, cnpj, email, telefone, endereco,
		cidade, estado, cep, contato, observacoes, ativo, criado_em, atualizado_em`

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO fornecedores (
			id, nome, razao_social, cnpj, email, telefone, endereco, cidade,
			estado, cep, contato, observacoes, ativo, criado_em, atualizado_em
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`,
		s.ID, s.Name, s.LegalName, s.CNPJ, s.Email, s.Phone, s.Address,
		s.City, s.State, s.ZipCode, s.Contact, s.Notes, s.Active,
		s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSupplierDuplicateKey
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, search string) ([]*supplier.Supplier, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + supplierColumns + ` FROM fornecedores WHERE ativo = true`
	args := []any{}
	if search != "" {
		query += ` AND (nome ILIKE $1 OR razao_social ILIKE $1 OR cnpj LIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY nome`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.LegalName, &s.CNPJ, &s.Email, &s.Phone,
			&s.Address, &s.City, &s.State, &s.ZipCode, &s.Contact, &s.Notes,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}

	return suppliers, nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	q := database.QuerierFrom(ctx, r.db)

	var s supplier.Supplier
	err := q.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM fornecedores WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.LegalName, &s.CNPJ, &s.Email, &s.Phone,
			&s.Address, &s.City, &s.State, &s.ZipCode, &s.Contact, &s.Notes,
			&s.Active, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return &s, nil
}
