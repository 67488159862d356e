package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

func TestAdjustStockRegistraMovimentacaoComValores(t *testing.T) {
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	notif := &recordNotifier{}
	svc := NewStockService(&fakeTx{}, products, movements, notif, logger.NewNopLogger())

	products.On("GetStock", mock.Anything, "p1").Return(10, nil)
	products.On("SetStock", mock.Anything, "p1", 7).Return(nil)

	var mv *stock.Movement
	movements.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { mv = args.Get(1).(*stock.Movement) }).
		Return(nil)

	require.NoError(t, svc.AdjustStock(context.Background(), "p1", -3, "Quebra", "u1"))

	require.NotNil(t, mv)
	assert.Equal(t, stock.MovementOut, mv.Type)
	assert.Equal(t, 3, mv.Quantity)
	assert.Equal(t, 10, mv.PreviousQty)
	assert.Equal(t, 7, mv.CurrentQty)
	assert.Equal(t, "Quebra", mv.Reason)
	assert.Contains(t, notif.topics, TopicProducts)
}

func TestAdjustStockPermiteEstoqueNegativo(t *testing.T) {
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	svc := NewStockService(&fakeTx{}, products, movements, &recordNotifier{}, logger.NewNopLogger())

	products.On("GetStock", mock.Anything, "p1").Return(1, nil)
	products.On("SetStock", mock.Anything, "p1", -2).Return(nil)
	movements.On("Create", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.AdjustStock(context.Background(), "p1", -3, "Venda", "u1"))
	products.AssertExpectations(t)
}

func TestAdjustStockNaoNotificaQuandoFalha(t *testing.T) {
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	notif := &recordNotifier{}
	svc := NewStockService(&fakeTx{}, products, movements, notif, logger.NewNopLogger())

	products.On("GetStock", mock.Anything, "p1").Return(5, nil)
	products.On("SetStock", mock.Anything, "p1", 6).Return(nil)
	movements.On("Create", mock.Anything, mock.Anything).Return(errors.New("trilho indisponível"))

	err := svc.AdjustStock(context.Background(), "p1", 1, "Compra", "u1")
	require.Error(t, err)
	assert.Empty(t, notif.topics)
}
