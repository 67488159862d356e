package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

var (
	ErrAccountNotFound     = errors.New("conta não encontrada")
	ErrAccountDuplicateKey = errors.New("conta com mesmo nome já existe")
)

// AccountRepository implementa a interface account.Repository
type AccountRepository struct {
	db database.Querier
}

// NewAccountRepository cria uma nova instância de AccountRepository
func NewAccountRepository(db database.Querier) account.Repository {
	return &AccountRepository{
		db: db,
	}
}

const accountColumns = `id, nome, tipo, banco, agencia, conta, saldo_inicial,
		saldo_atual, ativo, criado_em`

// Create implementa account.Repository.Create
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO contas_bancarias (
			id, nome, tipo, banco, agencia, conta, saldo_inicial, saldo_atual,
			ativo, criado_em
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.Name, a.Type, a.Bank, a.Agency, a.Number, a.OpeningBalance,
		a.CurrentBalance, a.Active, a.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrAccountDuplicateKey
		}
		return fmt.Errorf("erro ao criar conta: %w", err)
	}

	return nil
}

// FindByID implementa account.Repository.FindByID
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*account.Account, error) {
	q := database.QuerierFrom(ctx, r.db)

	var a account.Account
	err := q.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM contas_bancarias WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Type, &a.Bank, &a.Agency, &a.Number,
			&a.OpeningBalance, &a.CurrentBalance, &a.Active, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}

	return &a, nil
}

// List implementa account.Repository.List
func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+accountColumns+` FROM contas_bancarias WHERE ativo = true ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}
	defer rows.Close()

	accounts := make([]*account.Account, 0)
	for rows.Next() {
		var a account.Account
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.Bank, &a.Agency, &a.Number,
			&a.OpeningBalance, &a.CurrentBalance, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler conta: %w", err)
		}
		accounts = append(accounts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}

	return accounts, nil
}

// GetBalance implementa account.Repository.GetBalance
func (r *AccountRepository) GetBalance(ctx context.Context, id string) (float64, error) {
	q := database.QuerierFrom(ctx, r.db)

	var balance float64
	err := q.QueryRow(ctx,
		`SELECT saldo_atual FROM contas_bancarias WHERE id = $1`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("erro ao buscar saldo da conta: %w", err)
	}

	return balance, nil
}

// AdjustBalance implementa account.Repository.AdjustBalance
func (r *AccountRepository) AdjustBalance(ctx context.Context, id string, delta float64) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE contas_bancarias SET saldo_atual = saldo_atual + $2 WHERE id = $1`,
		id, delta)
	if err != nil {
		return fmt.Errorf("erro ao ajustar saldo da conta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// CreateMovement implementa account.Repository.CreateMovement
func (r *AccountRepository) CreateMovement(ctx context.Context, m *account.Movement) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO movimentacoes_caixa (
			id, conta_id, tipo, categoria, valor, descricao, documento,
			usuario_id, data_movimentacao
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.AccountID, m.Type, m.Category, m.Amount, m.Description,
		m.Document, m.UserID, m.OccurredAt)

	if err != nil {
		return fmt.Errorf("erro ao criar movimentação de caixa: %w", err)
	}

	return nil
}

// HasOpeningOn implementa account.Repository.HasOpeningOn
func (r *AccountRepository) HasOpeningOn(ctx context.Context, accountID string, day time.Time) (bool, error) {
	q := database.QuerierFrom(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM movimentacoes_caixa
			WHERE conta_id = $1 AND categoria = 'abertura'
			AND data_movimentacao::date = $2::date
		)`, accountID, day).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar abertura do caixa: %w", err)
	}

	return exists, nil
}

// DayTotals implementa account.Repository.DayTotals
func (r *AccountRepository) DayTotals(ctx context.Context, accountID string, day time.Time) (*account.DayTotals, error) {
	q := database.QuerierFrom(ctx, r.db)

	var t account.DayTotals
	err := q.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN tipo = 'entrada' THEN valor ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN tipo = 'saida' THEN valor ELSE 0 END), 0)
		FROM movimentacoes_caixa
		WHERE conta_id = $1 AND data_movimentacao::date = $2::date`,
		accountID, day).Scan(&t.TotalIn, &t.TotalOut)
	if err != nil {
		return nil, fmt.Errorf("erro ao totalizar movimentações do dia: %w", err)
	}

	return &t, nil
}

// FindDrift implementa account.Repository.FindDrift: recomputa o saldo de
// cada conta como saldo inicial mais a soma assinada das movimentações e
// devolve apenas as contas divergentes.
func (r *AccountRepository) FindDrift(ctx context.Context) ([]*account.Drift, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT c.id, c.nome, c.saldo_atual,
			c.saldo_inicial + COALESCE(SUM(
				CASE WHEN m.tipo = 'saida' THEN -m.valor ELSE m.valor END
			), 0) AS calculado
		FROM contas_bancarias c
		LEFT JOIN movimentacoes_caixa m ON m.conta_id = c.id
		WHERE c.ativo = true
		GROUP BY c.id, c.nome, c.saldo_atual, c.saldo_inicial
		HAVING ABS(c.saldo_atual - (c.saldo_inicial + COALESCE(SUM(
			CASE WHEN m.tipo = 'saida' THEN -m.valor ELSE m.valor END
		), 0))) > 0.005`)
	if err != nil {
		return nil, fmt.Errorf("erro ao conferir saldos: %w", err)
	}
	defer rows.Close()

	drifts := make([]*account.Drift, 0)
	for rows.Next() {
		var d account.Drift
		if err := rows.Scan(&d.AccountID, &d.AccountName, &d.Cached, &d.Computed); err != nil {
			return nil, fmt.Errorf("erro ao ler divergência de saldo: %w", err)
		}
		d.Delta = d.Cached - d.Computed
		drifts = append(drifts, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao conferir saldos: %w", err)
	}

	return drifts, nil
}
