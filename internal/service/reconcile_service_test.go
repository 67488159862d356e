package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

func TestVerifyStockRetornaDivergencias(t *testing.T) {
	movements := &mockStockRepo{}
	accounts := &mockAccountRepo{}
	svc := NewReconcileService(movements, accounts, logger.NewNopLogger())

	drifts := []*stock.Drift{
		{ProductID: "p1", ProductName: "Café 500g", Cached: 12, Computed: 10, Delta: 2},
	}
	movements.On("FindDrift", context.Background()).Return(drifts, nil)

	got, err := svc.VerifyStock(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Delta)
}

func TestVerifyStockSemDivergencias(t *testing.T) {
	movements := &mockStockRepo{}
	svc := NewReconcileService(movements, &mockAccountRepo{}, logger.NewNopLogger())

	movements.On("FindDrift", context.Background()).Return([]*stock.Drift{}, nil)

	got, err := svc.VerifyStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVerifyBalancesRetornaDivergencias(t *testing.T) {
	movements := &mockStockRepo{}
	accounts := &mockAccountRepo{}
	svc := NewReconcileService(movements, accounts, logger.NewNopLogger())

	drifts := []*account.Drift{
		{AccountID: "c1", AccountName: "Caixa Principal", Cached: 100, Computed: 80.5, Delta: 19.5},
	}
	accounts.On("FindDrift", context.Background()).Return(drifts, nil)

	got, err := svc.VerifyBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 19.5, got[0].Delta)
}
