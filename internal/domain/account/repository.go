package account

import (
	"context"
	"time"
)

// DayTotals resume as movimentações de um dia contra uma conta
type DayTotals struct {
	TotalIn  float64 `json:"entradas"`
	TotalOut float64 `json:"saidas"`
}

// Drift descreve a divergência entre o saldo em cache de uma conta e o valor
// recomputado a partir do saldo inicial e das movimentações.
type Drift struct {
	AccountID   string  `json:"conta_id"`
	AccountName string  `json:"conta_nome"`
	Cached      float64 `json:"saldo_atual"`
	Computed    float64 `json:"saldo_calculado"`
	Delta       float64 `json:"divergencia"`
}

// Repository define a interface para contas e movimentações de caixa
type Repository interface {
	// Create cria uma nova conta
	Create(ctx context.Context, a *Account) error

	// FindByID busca uma conta pelo ID
	FindByID(ctx context.Context, id string) (*Account, error)

	// List lista as contas ativas
	List(ctx context.Context) ([]*Account, error)

	// GetBalance retorna o saldo atual da conta
	GetBalance(ctx context.Context, id string) (float64, error)

	// AdjustBalance soma delta ao saldo atual da conta
	AdjustBalance(ctx context.Context, id string, delta float64) error

	// CreateMovement grava uma movimentação de caixa
	CreateMovement(ctx context.Context, m *Movement) error

	// HasOpeningOn informa se já existe movimentação de abertura para a
	// conta na data indicada
	HasOpeningOn(ctx context.Context, accountID string, day time.Time) (bool, error)

	// DayTotals soma entradas e saídas da conta na data indicada
	DayTotals(ctx context.Context, accountID string, day time.Time) (*DayTotals, error)

	// FindDrift recomputa o saldo de cada conta a partir do saldo inicial e
	// da soma assinada das movimentações, e retorna as contas divergentes
	FindDrift(ctx context.Context) ([]*Drift, error)
}
