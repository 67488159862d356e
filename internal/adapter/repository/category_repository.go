package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/category"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var (
	ErrCategoryNotFound     = errors.New("categoria não encontrada")
	ErrCategoryDuplicateKey = errors.New("categoria com mesmo nome já existe")
)

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db database.Querier
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db database.Querier) category.Repository {
	return &CategoryRepository{
		db: db,
	}
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO categorias (id, nome, descricao, cor, ativo, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Description, c.Color, c.Active, c.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}

	return nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, nome, descricao, cor, ativo, criado_em
		FROM categorias WHERE ativo = true ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}

	return categories, nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	q := database.QuerierFrom(ctx, r.db)

	var c category.Category
	err := q.QueryRow(ctx,
		`SELECT id, nome, descricao, cor, ativo, criado_em
		FROM categorias WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Active, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return &c, nil
}
