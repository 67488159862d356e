package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

const contaPadrao = "conta-caixa-1"

func newSaleServiceForTest(sales *mockSaleRepo, products *mockProductRepo, movements *mockStockRepo, accounts *mockAccountRepo, p ReceiptPrinter, n Notifier) *SaleService {
	tx := &fakeTx{}
	stockSvc := NewStockService(tx, products, movements, n, logger.NewNopLogger())
	return NewSaleService(tx, sales, products, accounts, stockSvc, p, n, contaPadrao, logger.NewNopLogger())
}

func TestCreateSaleRejeitaEntradaInvalida(t *testing.T) {
	svc := newSaleServiceForTest(&mockSaleRepo{}, &mockProductRepo{}, &mockStockRepo{}, &mockAccountRepo{}, &fakePrinter{}, &recordNotifier{})

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
	})
	assert.ErrorIs(t, err, sale.ErrEmptyUser)

	_, err = svc.CreateSale(context.Background(), CreateSaleInput{UserID: "u1"})
	assert.ErrorIs(t, err, sale.ErrEmptyItems)
}

func TestCreateSaleGravaVendaEstoqueECaixa(t *testing.T) {
	sales := &mockSaleRepo{}
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	prn := &fakePrinter{}
	svc := newSaleServiceForTest(sales, products, movements, accounts, prn, notif)

	sales.On("NextNumber", mock.Anything, mock.Anything).Return("202609010007", nil)
	products.On("GetCost", mock.Anything, "p1").Return(4.0, nil)
	products.On("GetCost", mock.Anything, "p2").Return(0.0, nil)

	var created *sale.Sale
	sales.On("Create", mock.Anything, mock.AnythingOfType("*sale.Sale")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*sale.Sale) }).
		Return(nil)

	// baixa de estoque dos dois itens
	products.On("GetStock", mock.Anything, "p1").Return(10, nil)
	products.On("GetStock", mock.Anything, "p2").Return(5, nil)
	products.On("SetStock", mock.Anything, "p1", 8).Return(nil)
	products.On("SetStock", mock.Anything, "p2", 4).Return(nil)
	movements.On("Create", mock.Anything, mock.Anything).Return(nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, 27.0).Return(nil)

	// recibo pós-commit
	sales.On("FindByID", mock.Anything, mock.Anything).Return(&sale.Sale{Number: "202609010007"}, nil)

	result, err := svc.CreateSale(context.Background(), CreateSaleInput{
		UserID:        "u1",
		Discount:      3,
		PaymentMethod: "dinheiro",
		Items: []SaleItemInput{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10},
			{ProductID: "p2", Quantity: 1, UnitPrice: 10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "202609010007", result.Number)

	require.NotNil(t, created)
	assert.Equal(t, 30.0, created.Subtotal)
	assert.Equal(t, 27.0, created.Total)
	assert.Equal(t, 4.0, created.Items[0].UnitCost)
	assert.Equal(t, 12.0, created.Items[0].Profit)

	require.NotNil(t, posted)
	assert.Equal(t, account.MovementIn, posted.Type)
	assert.Equal(t, account.CategorySale, posted.Category)
	assert.Equal(t, "Venda 202609010007", posted.Description)
	assert.Equal(t, 27.0, posted.Amount)

	assert.Contains(t, notif.topics, TopicProducts)
	assert.Contains(t, notif.topics, TopicSales)
	assert.Len(t, prn.receipts, 1)

	sales.AssertExpectations(t)
	products.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestCreateSaleFalhaNoCaixaAbortaTudo(t *testing.T) {
	sales := &mockSaleRepo{}
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	prn := &fakePrinter{}
	svc := newSaleServiceForTest(sales, products, movements, accounts, prn, notif)

	sales.On("NextNumber", mock.Anything, mock.Anything).Return("202609010001", nil)
	products.On("GetCost", mock.Anything, "p1").Return(1.0, nil)
	sales.On("Create", mock.Anything, mock.Anything).Return(nil)
	products.On("GetStock", mock.Anything, "p1").Return(3, nil)
	products.On("SetStock", mock.Anything, "p1", 2).Return(nil)
	movements.On("Create", mock.Anything, mock.Anything).Return(nil)
	accounts.On("CreateMovement", mock.Anything, mock.Anything).Return(errors.New("caixa indisponível"))

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		UserID: "u1",
		Items:  []SaleItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: 5}},
	})
	require.Error(t, err)

	// nada publicado nem impresso quando a transação falha
	assert.Empty(t, notif.topics)
	assert.Empty(t, prn.receipts)
	accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSaleFalhaDeImpressaoNaoDesfazVenda(t *testing.T) {
	sales := &mockSaleRepo{}
	products := &mockProductRepo{}
	movements := &mockStockRepo{}
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	prn := &fakePrinter{err: errors.New("impressora fora do ar")}
	svc := newSaleServiceForTest(sales, products, movements, accounts, prn, notif)

	sales.On("NextNumber", mock.Anything, mock.Anything).Return("202609010002", nil)
	products.On("GetCost", mock.Anything, "p1").Return(1.0, nil)
	sales.On("Create", mock.Anything, mock.Anything).Return(nil)
	products.On("GetStock", mock.Anything, "p1").Return(3, nil)
	products.On("SetStock", mock.Anything, "p1", 2).Return(nil)
	movements.On("Create", mock.Anything, mock.Anything).Return(nil)
	accounts.On("CreateMovement", mock.Anything, mock.Anything).Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, 5.0).Return(nil)
	sales.On("FindByID", mock.Anything, mock.Anything).Return(&sale.Sale{Number: "202609010002"}, nil)

	result, err := svc.CreateSale(context.Background(), CreateSaleInput{
		UserID: "u1",
		Items:  []SaleItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "202609010002", result.Number)
}
