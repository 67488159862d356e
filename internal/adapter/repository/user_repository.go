package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/user"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db database.Querier
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db database.Querier) user.Repository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, nome, email, senha, tipo, comissao, ativo, criado_em, atualizado_em`

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO usuarios (
			id, nome, email, senha, tipo, comissao, ativo, criado_em, atualizado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.Commission, u.Active,
		u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	q := database.QuerierFrom(ctx, r.db)

	var u user.User
	err := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Commission,
			&u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	q := database.QuerierFrom(ctx, r.db)

	var u user.User
	err := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1 AND ativo = true`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Commission,
			&u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário por email: %w", err)
	}

	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE ativo = true ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Commission,
			&u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}

	return users, nil
}
