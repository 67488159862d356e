package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/payable"
	"github.com/sistemapdv/sistema-pdv/internal/domain/product"
	"github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	"github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/pkg/printer"
)

// fakeTx executa a função diretamente, como uma transação que sempre comita
// quando fn devolve nil. O contador de chamadas permite afirmar que a
// operação rodou dentro de uma única unidade de trabalho.
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// recordNotifier acumula os tópicos publicados
type recordNotifier struct {
	topics []string
}

func (n *recordNotifier) Publish(topic string) {
	n.topics = append(n.topics, topic)
}

// fakePrinter registra os recibos recebidos e pode simular falha
type fakePrinter struct {
	receipts []printer.Receipt
	err      error
}

func (p *fakePrinter) PrintReceipt(r printer.Receipt) (*printer.Result, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.receipts = append(p.receipts, r)
	return &printer.Result{Success: true}, nil
}

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountRepo) List(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *mockAccountRepo) GetBalance(ctx context.Context, id string) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAccountRepo) AdjustBalance(ctx context.Context, id string, delta float64) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *mockAccountRepo) CreateMovement(ctx context.Context, mv *account.Movement) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockAccountRepo) HasOpeningOn(ctx context.Context, accountID string, day time.Time) (bool, error) {
	args := m.Called(ctx, accountID, day)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) DayTotals(ctx context.Context, accountID string, day time.Time) (*account.DayTotals, error) {
	args := m.Called(ctx, accountID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.DayTotals), args.Error(1)
}

func (m *mockAccountRepo) FindDrift(ctx context.Context) ([]*account.Drift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Drift), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepo) FindByBarcode(ctx context.Context, code string) (*product.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *mockProductRepo) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *mockProductRepo) GetCost(ctx context.Context, id string) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProductRepo) GetStock(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepo) SetStock(ctx context.Context, id string, stock int) error {
	return m.Called(ctx, id, stock).Error(0)
}

type mockStockRepo struct {
	mock.Mock
}

func (m *mockStockRepo) Create(ctx context.Context, mv *stock.Movement) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockStockRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*stock.Movement, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Movement), args.Error(1)
}

func (m *mockStockRepo) FindDrift(ctx context.Context) ([]*stock.Drift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Drift), args.Error(1)
}

type mockSaleRepo struct {
	mock.Mock
}

func (m *mockSaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSaleRepo) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *mockSaleRepo) List(ctx context.Context, f sale.Filter) ([]*sale.Sale, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *mockSaleRepo) NextNumber(ctx context.Context, day time.Time) (string, error) {
	args := m.Called(ctx, day)
	return args.String(0), args.Error(1)
}

type mockPayableRepo struct {
	mock.Mock
}

func (m *mockPayableRepo) Create(ctx context.Context, p *payable.Payable) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPayableRepo) FindByID(ctx context.Context, id string) (*payable.Payable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payable.Payable), args.Error(1)
}

func (m *mockPayableRepo) List(ctx context.Context, f payable.Filter) ([]*payable.Payable, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payable.Payable), args.Error(1)
}

func (m *mockPayableRepo) UpdateSettlement(ctx context.Context, p *payable.Payable) error {
	return m.Called(ctx, p).Error(0)
}

type mockReceivableRepo struct {
	mock.Mock
}

func (m *mockReceivableRepo) Create(ctx context.Context, r *receivable.Receivable) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReceivableRepo) FindByID(ctx context.Context, id string) (*receivable.Receivable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receivable.Receivable), args.Error(1)
}

func (m *mockReceivableRepo) List(ctx context.Context, f receivable.Filter) ([]*receivable.Receivable, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*receivable.Receivable), args.Error(1)
}

func (m *mockReceivableRepo) UpdateSettlement(ctx context.Context, r *receivable.Receivable) error {
	return m.Called(ctx, r).Error(0)
}
