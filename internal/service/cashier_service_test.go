package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

func newCashierServiceForTest(accounts *mockAccountRepo, n Notifier) *CashierService {
	return NewCashierService(&fakeTx{}, accounts, n, contaPadrao, logger.NewNopLogger())
}

func TestOpenCashierRecusaSegundaAberturaNoDia(t *testing.T) {
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newCashierServiceForTest(accounts, notif)

	accounts.On("HasOpeningOn", mock.Anything, contaPadrao, mock.Anything).Return(true, nil)

	err := svc.OpenCashier(context.Background(), "", 100, "u1")
	assert.ErrorIs(t, err, ErrCaixaJaAberto)
	assert.Empty(t, notif.topics)
	accounts.AssertNotCalled(t, "CreateMovement", mock.Anything, mock.Anything)
}

func TestOpenCashierLancaFundoDeTroco(t *testing.T) {
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newCashierServiceForTest(accounts, notif)

	accounts.On("HasOpeningOn", mock.Anything, contaPadrao, mock.Anything).Return(false, nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, 100.0).Return(nil)

	require.NoError(t, svc.OpenCashier(context.Background(), "", 100, "u1"))

	require.NotNil(t, posted)
	assert.Equal(t, account.MovementIn, posted.Type)
	assert.Equal(t, account.CategoryOpening, posted.Category)
	assert.Equal(t, "Abertura do caixa", posted.Description)
	assert.Contains(t, notif.topics, TopicFinancial)
}

func TestWithdrawValidaValorESaldo(t *testing.T) {
	accounts := &mockAccountRepo{}
	svc := newCashierServiceForTest(accounts, &recordNotifier{})

	err := svc.Withdraw(context.Background(), "", 0, "", "u1")
	assert.ErrorIs(t, err, ErrValorInvalido)

	accounts.On("GetBalance", mock.Anything, contaPadrao).Return(50.0, nil)
	err = svc.Withdraw(context.Background(), "", 80, "", "u1")
	assert.ErrorIs(t, err, ErrSaldoInsuficiente)
	accounts.AssertNotCalled(t, "CreateMovement", mock.Anything, mock.Anything)
}

func TestWithdrawLancaSaidaComDescricaoPadrao(t *testing.T) {
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newCashierServiceForTest(accounts, notif)

	accounts.On("GetBalance", mock.Anything, contaPadrao).Return(200.0, nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, -80.0).Return(nil)

	require.NoError(t, svc.Withdraw(context.Background(), "", 80, "", "u1"))

	require.NotNil(t, posted)
	assert.Equal(t, account.MovementOut, posted.Type)
	assert.Equal(t, account.CategoryWithdrawal, posted.Category)
	assert.Equal(t, "Sangria do caixa", posted.Description)
	assert.Contains(t, notif.topics, TopicFinancial)
}

func TestSupplyLancaEntrada(t *testing.T) {
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newCashierServiceForTest(accounts, notif)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, 50.0).Return(nil)

	require.NoError(t, svc.Supply(context.Background(), "", 50, "Troco extra", "u1"))

	require.NotNil(t, posted)
	assert.Equal(t, account.CategorySupply, posted.Category)
	assert.Equal(t, "Troco extra", posted.Description)
}

func TestCloseCashierResumeODiaSemZerarSaldo(t *testing.T) {
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newCashierServiceForTest(accounts, notif)

	accounts.On("DayTotals", mock.Anything, contaPadrao, mock.Anything).
		Return(&account.DayTotals{TotalIn: 500, TotalOut: 120}, nil)
	accounts.On("GetBalance", mock.Anything, contaPadrao).Return(380.0, nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	// fechamento tem valor zero: o saldo da conta não muda
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, -0.0).Return(nil)

	result, err := svc.CloseCashier(context.Background(), "", "u1")
	require.NoError(t, err)

	assert.Equal(t, 380.0, result.FinalBalance)
	assert.Equal(t, 500.0, result.TotalIn)
	assert.Equal(t, 120.0, result.TotalOut)

	require.NotNil(t, posted)
	assert.Equal(t, account.CategoryClosing, posted.Category)
	assert.Equal(t, 0.0, posted.Amount)
	assert.Equal(t, "Fechamento do caixa - Saldo: R$ 380.00", posted.Description)
}

func TestCashierUsaContaInformada(t *testing.T) {
	accounts := &mockAccountRepo{}
	svc := newCashierServiceForTest(accounts, &recordNotifier{})

	accounts.On("HasOpeningOn", mock.Anything, "conta-loja-2", mock.Anything).Return(false, nil)
	accounts.On("CreateMovement", mock.Anything, mock.Anything).Return(nil)
	accounts.On("AdjustBalance", mock.Anything, "conta-loja-2", 10.0).Return(nil)

	require.NoError(t, svc.OpenCashier(context.Background(), "conta-loja-2", 10, "u1"))
	accounts.AssertExpectations(t)
}
