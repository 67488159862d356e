package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier é o subconjunto de operações comum a *pgxpool.Pool e pgx.Tx.
// Os repositórios executam sempre através dele, de forma que a mesma
// implementação funciona dentro e fora de uma transação.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// QuerierFrom retorna a transação presente no contexto, se houver,
// ou o Querier padrão (normalmente o pool).
func QuerierFrom(ctx context.Context, def Querier) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return def
}

// TxManager executa funções dentro de uma unidade atômica de trabalho.
// A transação é carregada no contexto; chamadas aninhadas a
// WithinTransaction participam da transação já aberta.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager cria um novo TxManager sobre o pool de conexões
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction executa fn dentro de uma transação. Qualquer erro de fn
// provoca rollback completo; nenhuma escrita parcial fica visível.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		// Já estamos dentro de uma transação: participar dela
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("%w (erro ao fazer rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}
