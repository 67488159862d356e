package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/payable"
	"github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

func newSettlementServiceForTest(payables *mockPayableRepo, receivables *mockReceivableRepo, accounts *mockAccountRepo, n Notifier) *SettlementService {
	return NewSettlementService(&fakeTx{}, payables, receivables, accounts, n, contaPadrao, logger.NewNopLogger())
}

func novaContaPagar(t *testing.T, amount float64) *payable.Payable {
	t.Helper()
	p, err := payable.NewPayable(nil, "Aluguel da loja", "fixas", amount, time.Now().AddDate(0, 0, 10), "u1")
	require.NoError(t, err)
	return p
}

func TestPayPayableParcial(t *testing.T) {
	payables := &mockPayableRepo{}
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newSettlementServiceForTest(payables, &mockReceivableRepo{}, accounts, notif)

	p := novaContaPagar(t, 1000)
	payables.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	payables.On("UpdateSettlement", mock.Anything, p).Return(nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, -400.0).Return(nil)

	settled, err := svc.PayPayable(context.Background(), p.ID, SettlementInput{
		Amount: 400, PaymentMethod: "pix", UserID: "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, payable.StatusPartial, settled.Status)
	assert.Equal(t, 400.0, settled.PaidAmount)
	assert.Equal(t, 600.0, settled.RemainingAmount)

	require.NotNil(t, posted)
	assert.Equal(t, account.MovementOut, posted.Type)
	assert.Equal(t, account.CategoryPayment, posted.Category)
	assert.Equal(t, "Pagamento: Aluguel da loja", posted.Description)
	assert.Contains(t, notif.topics, TopicFinancial)
}

func TestPayPayableQuitacaoEReincidencia(t *testing.T) {
	payables := &mockPayableRepo{}
	accounts := &mockAccountRepo{}
	svc := newSettlementServiceForTest(payables, &mockReceivableRepo{}, accounts, &recordNotifier{})

	p := novaContaPagar(t, 300)
	payables.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	payables.On("UpdateSettlement", mock.Anything, p).Return(nil)
	accounts.On("CreateMovement", mock.Anything, mock.Anything).Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, -300.0).Return(nil)

	settled, err := svc.PayPayable(context.Background(), p.ID, SettlementInput{Amount: 300, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, payable.StatusPaid, settled.Status)
	assert.Equal(t, 0.0, settled.RemainingAmount)

	// segundo pagamento contra conta quitada falha sem lançar nada
	_, err = svc.PayPayable(context.Background(), p.ID, SettlementInput{Amount: 10, UserID: "u1"})
	assert.ErrorIs(t, err, payable.ErrAlreadyPaid)
	accounts.AssertNumberOfCalls(t, "CreateMovement", 1)
}

func TestPayPayableAcimaDoDevido(t *testing.T) {
	payables := &mockPayableRepo{}
	accounts := &mockAccountRepo{}
	svc := newSettlementServiceForTest(payables, &mockReceivableRepo{}, accounts, &recordNotifier{})

	p := novaContaPagar(t, 100)
	payables.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	payables.On("UpdateSettlement", mock.Anything, p).Return(nil)
	accounts.On("CreateMovement", mock.Anything, mock.Anything).Return(nil)
	accounts.On("AdjustBalance", mock.Anything, contaPadrao, -150.0).Return(nil)

	// o excedente não é rejeitado: restante fica negativo e o status resolve
	// para pago
	settled, err := svc.PayPayable(context.Background(), p.ID, SettlementInput{Amount: 150, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, payable.StatusPaid, settled.Status)
	assert.Equal(t, -50.0, settled.RemainingAmount)
}

func TestPayPayableValorInvalido(t *testing.T) {
	svc := newSettlementServiceForTest(&mockPayableRepo{}, &mockReceivableRepo{}, &mockAccountRepo{}, &recordNotifier{})

	_, err := svc.PayPayable(context.Background(), "x", SettlementInput{Amount: 0, UserID: "u1"})
	assert.ErrorIs(t, err, ErrValorInvalido)
}

func TestReceiveReceivableLancaEntradaNaContaInformada(t *testing.T) {
	receivables := &mockReceivableRepo{}
	accounts := &mockAccountRepo{}
	notif := &recordNotifier{}
	svc := newSettlementServiceForTest(&mockPayableRepo{}, receivables, accounts, notif)

	r, err := receivable.NewReceivable(nil, nil, "Venda a prazo", 500, time.Now().AddDate(0, 1, 0), "u1")
	require.NoError(t, err)

	receivables.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	receivables.On("UpdateSettlement", mock.Anything, r).Return(nil)

	var posted *account.Movement
	accounts.On("CreateMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { posted = args.Get(1).(*account.Movement) }).
		Return(nil)
	accounts.On("AdjustBalance", mock.Anything, "conta-banco-2", 500.0).Return(nil)

	settled, err := svc.ReceiveReceivable(context.Background(), r.ID, SettlementInput{
		Amount: 500, PaymentMethod: "cartao", BankAccountID: "conta-banco-2", UserID: "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, receivable.StatusReceived, settled.Status)
	require.NotNil(t, posted)
	assert.Equal(t, account.MovementIn, posted.Type)
	assert.Equal(t, account.CategoryReceipt, posted.Category)
	assert.Equal(t, "Recebimento: Venda a prazo", posted.Description)
	assert.Equal(t, "conta-banco-2", posted.AccountID)
	assert.Contains(t, notif.topics, TopicFinancial)
}
