package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/settings"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var ErrSettingNotFound = errors.New("configuração não encontrada")

// SettingsRepository implementa a interface settings.Repository
type SettingsRepository struct {
	db database.Querier
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db database.Querier) settings.Repository {
	return &SettingsRepository{
		db: db,
	}
}

// List implementa settings.Repository.List
func (r *SettingsRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT chave, valor, tipo, descricao, categoria, data_atualizacao
		FROM configuracoes ORDER BY categoria, chave`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar configurações: %w", err)
	}
	defer rows.Close()

	items := make([]*settings.Setting, 0)
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Type, &s.Description, &s.Category, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler configuração: %w", err)
		}
		items = append(items, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar configurações: %w", err)
	}

	return items, nil
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	q := database.QuerierFrom(ctx, r.db)

	var s settings.Setting
	err := q.QueryRow(ctx,
		`SELECT chave, valor, tipo, descricao, categoria, data_atualizacao
		FROM configuracoes WHERE chave = $1`, key).
		Scan(&s.Key, &s.Value, &s.Type, &s.Description, &s.Category, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	return &s, nil
}

// Save implementa settings.Repository.Save (insere ou substitui)
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Setting) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO configuracoes (chave, valor, tipo, descricao, categoria, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (chave)
		DO UPDATE SET valor = $2, tipo = $3, descricao = $4, categoria = $5,
			data_atualizacao = NOW()`,
		s.Key, s.Value, s.Type, s.Description, s.Category)

	if err != nil {
		return fmt.Errorf("erro ao gravar configuração: %w", err)
	}

	return nil
}

// Reset implementa settings.Repository.Reset: apaga tudo e regrava os padrões
func (r *SettingsRepository) Reset(ctx context.Context) error {
	q := database.QuerierFrom(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM configuracoes`); err != nil {
		return fmt.Errorf("erro ao limpar configurações: %w", err)
	}

	for _, s := range settings.Defaults() {
		if err := r.Save(ctx, &s); err != nil {
			return err
		}
	}

	return nil
}
